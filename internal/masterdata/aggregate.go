package masterdata

import (
	"bytes"
	"encoding/json"
)

// UnassignedKey is the JSON key under which companies without an industry are grouped.
const UnassignedKey = "null"

// BuildCompanyDetail folds the joined company/industry rows and the company's
// invoices into one CompanyDetail. It reports false when rows is empty.
//
// One industry label is kept per association row; rows with a nil industry
// contribute nothing, so a company without associations has an empty list.
func BuildCompanyDetail(rows []CompanyIndustryRow, invoices []Invoice) (CompanyDetail, bool) {
	if len(rows) == 0 {
		return CompanyDetail{}, false
	}

	detail := CompanyDetail{
		Company:    rows[0].Company,
		Invoices:   make([]Invoice, 0, len(invoices)),
		Industries: make([]string, 0, len(rows)),
	}
	detail.Invoices = append(detail.Invoices, invoices...)
	for _, row := range rows {
		if row.Industry == nil {
			continue
		}
		detail.Industries = append(detail.Industries, *row.Industry)
	}
	return detail, true
}

// Group is the set of company codes filed under one industry label.
// Label is nil for the unassigned group.
type Group struct {
	Label     *string
	Companies []string
}

type groupKey struct {
	label    string
	assigned bool
}

// IndustryGroups maps industry labels to company codes. Groups and the codes
// within each group keep the order in which they were first seen.
type IndustryGroups struct {
	groups []Group
	index  map[groupKey]int
	seen   []map[string]struct{}
}

// GroupByIndustry groups membership rows by industry label in one pass. A
// company code is added to a group at most once.
func GroupByIndustry(rows []MembershipRow) IndustryGroups {
	g := IndustryGroups{index: make(map[groupKey]int)}
	for _, row := range rows {
		g.add(row)
	}
	return g
}

func (g *IndustryGroups) add(row MembershipRow) {
	key := groupKey{}
	if row.Industry != nil {
		key = groupKey{label: *row.Industry, assigned: true}
	}

	i, ok := g.index[key]
	if !ok {
		var label *string
		if key.assigned {
			l := key.label
			label = &l
		}
		i = len(g.groups)
		g.index[key] = i
		g.groups = append(g.groups, Group{Label: label, Companies: []string{}})
		g.seen = append(g.seen, make(map[string]struct{}))
	}

	if _, dup := g.seen[i][row.CompanyCode]; dup {
		return
	}
	g.seen[i][row.CompanyCode] = struct{}{}
	g.groups[i].Companies = append(g.groups[i].Companies, row.CompanyCode)
}

// Groups returns the groups in first-seen order.
func (g IndustryGroups) Groups() []Group {
	out := make([]Group, len(g.groups))
	copy(out, g.groups)
	return out
}

// Len returns the number of groups.
func (g IndustryGroups) Len() int {
	return len(g.groups)
}

// Companies returns the company codes filed under label, or nil.
func (g IndustryGroups) Companies(label string) []string {
	if i, ok := g.index[groupKey{label: label, assigned: true}]; ok {
		return g.groups[i].Companies
	}
	return nil
}

// Unassigned returns the codes of companies that have no industry.
func (g IndustryGroups) Unassigned() []string {
	if i, ok := g.index[groupKey{}]; ok {
		return g.groups[i].Companies
	}
	return nil
}

// MarshalJSON encodes the groups as an object keyed by label, in first-seen
// order. The unassigned group is keyed by UnassignedKey; an industry literally
// labelled with that key shares its entry.
func (g IndustryGroups) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(g.groups))
	merged := make(map[string][]string, len(g.groups))
	for _, group := range g.groups {
		key := UnassignedKey
		if group.Label != nil {
			key = *group.Label
		}
		existing, ok := merged[key]
		if !ok {
			keys = append(keys, key)
			merged[key] = append([]string{}, group.Companies...)
			continue
		}
		merged[key] = appendUnique(existing, group.Companies)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(merged[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func appendUnique(dst, src []string) []string {
	for _, code := range src {
		found := false
		for _, existing := range dst {
			if existing == code {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, code)
		}
	}
	return dst
}
