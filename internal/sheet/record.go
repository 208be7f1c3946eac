package sheet

import "strings"

// PersonRecord is one buying-group member read from the workbook. Fields are
// optional; missing columns leave them empty rather than failing the row.
type PersonRecord struct {
	UniqueID    string `json:"id"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Email       string `json:"email"`
	LinkedIn    string `json:"linkedin"`
	ReportsTo   string `json:"reportsTo"`
	Category    string `json:"category"`
	CompanyName string `json:"-"`
	Location    string `json:"-"`
}

// Identity returns the key other rows reference this record by: the unique
// ID when present, otherwise the person's name.
func (r PersonRecord) Identity() string {
	if r.UniqueID != "" {
		return r.UniqueID
	}
	return r.Name
}

// normalizeHeader lowercases a header and strips spaces, underscores and hyphens.
func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, name)
}

// RecordFromRow maps a row into a PersonRecord via an explicit column map.
// Workbooks in the wild disagree on header spelling, so each field accepts a
// fixed alias list probed in priority order. Unknown columns are ignored.
func RecordFromRow(row Row) PersonRecord {
	lookup := make(map[string]string, len(row))
	for name, value := range row {
		key := normalizeHeader(name)
		value = strings.TrimSpace(value)
		if existing := lookup[key]; existing == "" {
			lookup[key] = value
		}
	}

	pick := func(aliases ...string) string {
		for _, alias := range aliases {
			if v := lookup[alias]; v != "" {
				return v
			}
		}
		return ""
	}

	return PersonRecord{
		UniqueID:    pick("uniqueid", "id"),
		Name:        pick("name", "fullname"),
		Designation: pick("designation", "role", "title"),
		Email:       pick("email", "emailid"),
		LinkedIn:    pick("linkedin", "linkedinprofile", "linkedinurl"),
		ReportsTo:   pick("reportsto", "manager"),
		Category:    pick("category"),
		CompanyName: pick("companyname", "company"),
		Location:    pick("location"),
	}
}

// RecordsFromRows converts rows in order, dropping rows without a name.
func RecordsFromRows(rows []Row) []PersonRecord {
	records := make([]PersonRecord, 0, len(rows))
	for _, row := range rows {
		record := RecordFromRow(row)
		if record.Name == "" {
			continue
		}
		records = append(records, record)
	}
	return records
}
