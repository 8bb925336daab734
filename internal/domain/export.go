package domain

// ExportRow is a single row in the board export: one row per outlet, in
// board order. RegistrationDate is the outlet's assigned date formatted as
// "2006-01-02" (UTC).
type ExportRow struct {
	Name             string
	City             string
	Stage            string
	Description      string
	RegistrationDate string
}
