// Package basicinfo holds the session's mutable organizational record.
package basicinfo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/slam0615/sc2026/internal/schema"
)

// Field names accepted by Store.Set, matching the keys the presentation
// layer submits for each input control.
const (
	FieldUnitName        = "unitName"
	FieldTaxID           = "taxId"
	FieldCity            = "city"
	FieldDistrict        = "district"
	FieldUnitType        = "unitType"
	FieldUnitTypeOther   = "unitTypeOther"
	FieldSchoolType      = "schoolType"
	FieldHospitalType    = "hospitalType"
	FieldIndustry        = "industry"
	FieldEmployeesMale   = "employeesMale"
	FieldEmployeesFemale = "employeesFemale"
	FieldContactName     = "contactName"
	FieldContactDept     = "contactDept"
	FieldContactTitle    = "contactTitle"
	FieldContactPhone    = "contactPhone"
	FieldContactEmail    = "contactEmail"
)

// Store owns one BasicInfo record. All mutation goes through Set, which keeps
// the derived scale label in sync with the employee counts — there is no
// observable state where the counts have changed but the scale has not.
type Store struct {
	info schema.BasicInfo
}

// New returns a store with an empty record.
func New() *Store {
	return &Store{}
}

// Info returns a snapshot of the current record.
func (s *Store) Info() schema.BasicInfo {
	return s.info
}

// Set applies one field update. Setting city clears the district in the same
// update, because district options depend on the city. Setting either
// employee-count field coerces the value to a non-negative integer and
// recomputes the scale label before Set returns. The derived scale field
// itself is not settable.
func (s *Store) Set(field, value string) error {
	switch field {
	case FieldUnitName:
		s.info.UnitName = value
	case FieldTaxID:
		s.info.TaxID = value
	case FieldCity:
		s.info.City = value
		s.info.District = ""
	case FieldDistrict:
		s.info.District = value
	case FieldUnitType:
		s.info.UnitType = value
	case FieldUnitTypeOther:
		s.info.UnitTypeOther = value
	case FieldSchoolType:
		s.info.SchoolType = value
	case FieldHospitalType:
		s.info.HospitalType = value
	case FieldIndustry:
		s.info.Industry = value
	case FieldEmployeesMale:
		s.info.EmployeesMale = coerceCount(value)
		s.recomputeScale()
	case FieldEmployeesFemale:
		s.info.EmployeesFemale = coerceCount(value)
		s.recomputeScale()
	case FieldContactName:
		s.info.ContactName = value
	case FieldContactDept:
		s.info.ContactDept = value
	case FieldContactTitle:
		s.info.ContactTitle = value
	case FieldContactPhone:
		s.info.ContactPhone = value
	case FieldContactEmail:
		s.info.ContactEmail = value
	case "scale":
		return fmt.Errorf("field %q is derived and cannot be set", field)
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

func (s *Store) recomputeScale() {
	s.info.Scale = schema.ScaleFor(s.info.EmployeesMale + s.info.EmployeesFemale)
}

// coerceCount parses an employee-count input. Empty, invalid, or negative
// input coerces to zero so the scale calculation is always well-defined.
func coerceCount(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
