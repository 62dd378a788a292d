// Package submission loads a filled questionnaire from a YAML file for
// batch scoring.
package submission

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/slam0615/sc2026/internal/answers"
	"github.com/slam0615/sc2026/internal/basicinfo"
)

// BasicInfo is the on-disk shape of the organizational fields. The derived
// scale label is not part of the file; it is recomputed when the fields are
// replayed through the store.
type BasicInfo struct {
	UnitName        string `yaml:"unit_name"`
	TaxID           string `yaml:"tax_id"`
	City            string `yaml:"city"`
	District        string `yaml:"district"`
	UnitType        string `yaml:"unit_type"`
	UnitTypeOther   string `yaml:"unit_type_other"`
	SchoolType      string `yaml:"school_type"`
	HospitalType    string `yaml:"hospital_type"`
	Industry        string `yaml:"industry"`
	EmployeesMale   int    `yaml:"employees_male"`
	EmployeesFemale int    `yaml:"employees_female"`
	ContactName     string `yaml:"contact_name"`
	ContactDept     string `yaml:"contact_dept"`
	ContactTitle    string `yaml:"contact_title"`
	ContactPhone    string `yaml:"contact_phone"`
	ContactEmail    string `yaml:"contact_email"`
}

// File is one submission document. A question ID absent from Answers is
// unanswered.
type File struct {
	BasicInfo BasicInfo    `yaml:"basic_info"`
	Answers   map[int]bool `yaml:"answers"`
}

// Load reads and parses a submission file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading submission: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing submission: %w", err)
	}
	return &f, nil
}

// Populate replays the file through the session stores, field by field, so
// coercion and derivation rules apply exactly as they do for interactive
// input — including the district reset on city change and the scale
// recomputation from the employee counts.
func (f *File) Populate(info *basicinfo.Store, ans *answers.Store) error {
	fields := []struct {
		name  string
		value string
	}{
		{basicinfo.FieldUnitName, f.BasicInfo.UnitName},
		{basicinfo.FieldTaxID, f.BasicInfo.TaxID},
		{basicinfo.FieldCity, f.BasicInfo.City},
		{basicinfo.FieldDistrict, f.BasicInfo.District},
		{basicinfo.FieldUnitType, f.BasicInfo.UnitType},
		{basicinfo.FieldUnitTypeOther, f.BasicInfo.UnitTypeOther},
		{basicinfo.FieldSchoolType, f.BasicInfo.SchoolType},
		{basicinfo.FieldHospitalType, f.BasicInfo.HospitalType},
		{basicinfo.FieldIndustry, f.BasicInfo.Industry},
		{basicinfo.FieldEmployeesMale, strconv.Itoa(f.BasicInfo.EmployeesMale)},
		{basicinfo.FieldEmployeesFemale, strconv.Itoa(f.BasicInfo.EmployeesFemale)},
		{basicinfo.FieldContactName, f.BasicInfo.ContactName},
		{basicinfo.FieldContactDept, f.BasicInfo.ContactDept},
		{basicinfo.FieldContactTitle, f.BasicInfo.ContactTitle},
		{basicinfo.FieldContactPhone, f.BasicInfo.ContactPhone},
		{basicinfo.FieldContactEmail, f.BasicInfo.ContactEmail},
	}
	for _, fv := range fields {
		if err := info.Set(fv.name, fv.value); err != nil {
			return fmt.Errorf("applying %s: %w", fv.name, err)
		}
	}

	for id, yes := range f.Answers {
		ans.Set(id, yes)
	}
	return nil
}
