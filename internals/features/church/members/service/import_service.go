package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	assemblyModel "sepcam_backend/internals/features/church/assemblies/model"
	cellModel "sepcam_backend/internals/features/church/cells/model"
	"sepcam_backend/internals/features/church/members/model"
	unitModel "sepcam_backend/internals/features/church/units/model"
)

// Reference data the historical rolls were keyed against. The importer
// creates any of these that are missing before touching member rows.
var importUnitNames = []string{
	"Praise Team", "Media", "Ushering", "Children", "Decoration",
	"Sanctuary Keeper", "Evangelism", "Drama", "Security", "Welfare",
	"Organizing", "Technical", "Prayer", "Interpreting",
}

var importCellNames = []string{
	"Ifelodun A", "Ifelodun B", "Ipinsa", "Oke Odu", "Orita-Obele",
	"Akad/Unity", "FUTA South Gate", "Oba-Ile",
}

const importAssemblyName = "Ifelodun Assembly"

// dateLayouts covers the mix of day-first and month-first spellings found
// in the rolls. Order matters: day-first wins on ambiguous values.
var dateLayouts = []string{
	"2/1/06", "2/1/2006", "2-Jan", "2-Jan-06", "2-Jan-2006",
	"1/2/06", "1/2/2006",
}

// ParseFlexibleDate turns a loosely formatted CSV date into a time value.
// A bare day/month pair like "26/12" resolves against the current year.
// Empty, "nil", "null", and anything unparseable all come back nil.
func ParseFlexibleDate(raw string, now time.Time) *time.Time {
	s := strings.TrimSpace(raw)
	switch strings.ToLower(s) {
	case "", "nil", "null":
		return nil
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		// Layouts without a year parse into year 0; pin those to now.
		if t.Year() == 0 {
			t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
		return &t
	}

	// Last chance: "day/month" with numbers that overflow a layout match.
	if parts := strings.Split(s, "/"); len(parts) == 2 {
		day, dayErr := strconv.Atoi(strings.TrimSpace(parts[0]))
		month, monthErr := strconv.Atoi(strings.TrimSpace(parts[1]))
		if dayErr == nil && monthErr == nil && month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			t := time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, time.UTC)
			return &t
		}
	}

	return nil
}

// MapGender folds the CSV's single-letter codes; anything else is "O".
func MapGender(raw string) string {
	switch strings.TrimSpace(raw) {
	case "M":
		return model.GenderMale
	case "F":
		return model.GenderFemale
	default:
		return model.GenderOther
	}
}

// MapMaritalStatus folds the CSV's spellings (including the recurring
// "Seprated" typo) into the status vocabulary. Unknown values default to
// SINGLE, matching how the rolls were kept.
func MapMaritalStatus(raw string) string {
	switch strings.TrimSpace(raw) {
	case "Married":
		return model.MaritalMarried
	case "Widow", "Widowed":
		return model.MaritalWidowed
	case "Seprated", "Separated":
		return model.MaritalSeparated
	default:
		return model.MaritalSingle
	}
}

// YearToDate turns a bare year string ("2014") into January 1 of that year.
func YearToDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	year, err := strconv.Atoi(s)
	if err != nil || year < 1900 || year > 2200 {
		return nil
	}
	t := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &t
}

type ImportResult struct {
	Created int
	Updated int
	Skipped int
}

type MemberImporter struct {
	DB *gorm.DB

	assembly assemblyModel.AssemblyModel
	units    map[string]uuid.UUID
	cells    map[string]uuid.UUID
}

func NewMemberImporter(db *gorm.DB) *MemberImporter {
	return &MemberImporter{
		DB:    db,
		units: make(map[string]uuid.UUID),
		cells: make(map[string]uuid.UUID),
	}
}

// ImportFromCSV reads the rolls file and upserts member rows. Matching is
// phone-first, then email, both paired with a loose name match, so a
// re-import updates instead of duplicating.
func (imp *MemberImporter) ImportFromCSV(path string) (*ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	if err := imp.ensureReferenceData(); err != nil {
		return nil, fmt.Errorf("prepare reference data: %w", err)
	}

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	get := func(record []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	result := &ImportResult{}
	now := time.Now()

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return result, fmt.Errorf("read row: %w", err)
		}

		surname := get(record, "Surname")
		otherNames1 := get(record, "Other Names 1")
		if surname == "" && otherNames1 == "" {
			result.Skipped++
			continue
		}

		firstName := otherNames1
		if firstName == "" {
			firstName = surname
		}

		unitName := get(record, "Main Unit")
		if unitName == "" {
			unitName = get(record, "Sub-Unit 1")
		}
		cellName := get(record, "Cell")
		if cellName == "" {
			cellName = get(record, "Assembly")
		}

		var baptismDate *time.Time
		if strings.EqualFold(get(record, "Baptism"), "yes") {
			baptismDate = YearToDate(get(record, "Baptism Year"))
		}

		row := &model.MemberModel{
			MemberAssemblyID: imp.assembly.AssemblyID,
			MemberUnitID:     imp.lookupID(imp.units, unitName),
			MemberCellID:     imp.lookupID(imp.cells, cellName),

			MemberFirstName:  firstName,
			MemberLastName:   surname,
			MemberMiddleName: get(record, "Other Names 2"),

			MemberDateOfBirth:   ParseFlexibleDate(get(record, "DOB"), now),
			MemberGender:        MapGender(get(record, "Gender")),
			MemberMaritalStatus: MapMaritalStatus(get(record, "Status")),

			MemberEmail:   get(record, "Email"),
			MemberPhone:   get(record, "Phone"),
			MemberAddress: firstNonEmpty(get(record, "Address"), get(record, "Place of Work")),

			MemberBaptismDate:      baptismDate,
			MemberMembershipDate:   YearToDate(get(record, "born again year")),
			MemberMembershipStatus: model.StatusActive,
		}

		existing, err := imp.findExisting(row)
		if err != nil {
			return result, fmt.Errorf("look up member %s %s: %w", firstName, surname, err)
		}

		if existing != nil {
			MergeForUpdate(existing, row)
			if err := imp.DB.Save(row).Error; err != nil {
				return result, fmt.Errorf("update member %s %s: %w", firstName, surname, err)
			}
			result.Updated++
			log.Printf("[INFO] updated: %s %s", firstName, surname)
		} else {
			if err := imp.DB.Create(row).Error; err != nil {
				return result, fmt.Errorf("create member %s %s: %w", firstName, surname, err)
			}
			result.Created++
			log.Printf("[INFO] created: %s %s", firstName, surname)
		}
	}

	return result, nil
}

func (imp *MemberImporter) lookupID(m map[string]uuid.UUID, name string) *uuid.UUID {
	if name == "" {
		return nil
	}
	id, ok := m[name]
	if !ok {
		return nil
	}
	return &id
}

// ensureReferenceData gets or creates the assembly, units, and cells the
// rolls reference by name.
func (imp *MemberImporter) ensureReferenceData() error {
	err := imp.DB.Where("assembly_name = ?", importAssemblyName).
		Attrs(assemblyModel.AssemblyModel{
			AssemblyName:          importAssemblyName,
			AssemblyDescription:   "Main church assembly from CSV data",
			AssemblyStreetAddress: "FUTA Northgate Area",
			AssemblyCity:          "Akure",
			AssemblyState:         "Ondo",
			AssemblyCountry:       "Nigeria",
			AssemblyIsActive:      true,
		}).
		FirstOrCreate(&imp.assembly).Error
	if err != nil {
		return err
	}

	for _, name := range importUnitNames {
		var unit unitModel.UnitModel
		if err := imp.DB.Where("unit_name = ?", name).
			Attrs(unitModel.UnitModel{UnitName: name}).
			FirstOrCreate(&unit).Error; err != nil {
			return err
		}
		imp.units[name] = unit.UnitID
	}

	for _, name := range importCellNames {
		var cell cellModel.CellModel
		if err := imp.DB.Where("cell_name = ? AND cell_assembly_id = ?", name, imp.assembly.AssemblyID).
			Attrs(cellModel.CellModel{
				CellAssemblyID:  imp.assembly.AssemblyID,
				CellName:        name,
				CellCreatedDate: time.Now(),
			}).
			FirstOrCreate(&cell).Error; err != nil {
			return err
		}
		imp.cells[name] = cell.CellID
	}

	return nil
}

// ImportMatchKey is one identity probe for a CSV row: a column to equal-match
// plus the value, always paired with a loose name match by the caller.
type ImportMatchKey struct {
	Column string
	Value  string
}

// MatchKeys returns the identity probes for a row in priority order: phone
// first, then email. A row with neither yields no keys and is always treated
// as new.
func MatchKeys(phone, email string) []ImportMatchKey {
	var keys []ImportMatchKey
	if p := strings.TrimSpace(phone); p != "" {
		keys = append(keys, ImportMatchKey{Column: "member_phone", Value: p})
	}
	if e := strings.TrimSpace(email); e != "" {
		keys = append(keys, ImportMatchKey{Column: "member_email", Value: e})
	}
	return keys
}

// MergeForUpdate carries the stored identity onto the incoming row, so the
// following Save updates the matched member in place instead of inserting a
// duplicate. Every other field takes the incoming value.
func MergeForUpdate(existing, incoming *model.MemberModel) {
	incoming.MemberID = existing.MemberID
	incoming.MemberCreatedAt = existing.MemberCreatedAt
}

// findExisting matches a member by phone (preferred) or email, paired with
// a case-insensitive name containment check.
func (imp *MemberImporter) findExisting(row *model.MemberModel) (*model.MemberModel, error) {
	for _, key := range MatchKeys(row.MemberPhone, row.MemberEmail) {
		var found model.MemberModel
		err := imp.DB.
			Where(key.Column+" = ? AND member_first_name ILIKE ? AND member_last_name ILIKE ?",
				key.Value, "%"+row.MemberFirstName+"%", "%"+row.MemberLastName+"%").
			First(&found).Error
		if err == nil {
			return &found, nil
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}
	return nil, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
