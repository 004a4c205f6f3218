package compliance

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mlaurier/doccheck/internal/types"
)

// checkResult is the outcome of a single requirement check.
type checkResult struct {
	satisfied bool
	code      string
	message   string
	remedy    string
	// severity overrides the default for optional requirements; mandatory
	// requirement failures are always critical regardless of this value.
	severity types.Severity
	// malformed lists field names that were present with the wrong shape
	// and were treated as absent for this check.
	malformed []string
}

// checkFunc evaluates one requirement against the document fields. Checks
// are pure: they read fields and the static tables, nothing else.
type checkFunc func(fields types.Fields) checkResult

// checks maps requirement IDs to their pass/fail implementations. Every
// requirement in the catalog must have an entry here; catalog conditions
// are documentation, this is the behavior.
var checks = map[string]checkFunc{
	// will
	"slra_s4_signature":            requireSignatureDate("Record the date the testator signed the will"),
	"slra_s4_witnesses":            requireWitnesses("Have the will signed in the presence of two witnesses, both present at the same time"),
	"ea_executor_appointment":      requireExecutors,
	"slra_s12_beneficiary_witness": checkBeneficiaryWitness,
	"slra_s8_testator_age":         checkTestatorAge,
	"will_testamentary_capacity":   checkCapacityConfirmed,

	// poa_property
	"sda_s7_attorney_appointment":   requireAttorneys("Name at least one attorney for property in the power of attorney"),
	"sda_s10_witnesses":             requireWitnesses("Have the power of attorney executed in the presence of two eligible witnesses"),
	"sda_s10_execution":             requireSignatureDate("Record the date the grantor signed the power of attorney"),
	"sda_s10_2_witness_eligibility": checkWitnessEligibility,
	"sda_s8_grantor_capacity":       checkCapacityConfirmed,
	"sda_s7_1_continuing_clause":    checkContinuingClause,

	// poa_personal_care
	"sda_s46_attorney_appointment":  requireAttorneys("Name at least one attorney for personal care in the power of attorney"),
	"sda_s48_witnesses":             requireWitnesses("Have the power of attorney executed in the presence of two eligible witnesses"),
	"sda_s48_execution":             requireSignatureDate("Record the date the grantor signed the power of attorney"),
	"sda_s46_3_care_provider":       checkPaidCareProvider,
	"sda_s48_2_witness_eligibility": checkWitnessEligibility,
	"sda_s47_grantor_capacity":      checkCapacityConfirmed,
}

// excludedWitnessRelationships are relationship values that disqualify a
// witness under SDA s. 10(2) and s. 48(2).
var excludedWitnessRelationships = []string{"attorney", "spouse", "partner", "child"}

const minWitnesses = 2

func requireSignatureDate(remedy string) checkFunc {
	return func(fields types.Fields) checkResult {
		_, state := stringField(fields, "signature_date")
		res := checkResult{
			satisfied: state == fieldOK,
			code:      "missing_signature_date",
			message:   "No signature date is recorded for the document",
			remedy:    remedy,
		}
		if state == fieldMalformed {
			res.malformed = []string{"signature_date"}
		}
		return res
	}
}

func requireWitnesses(remedy string) checkFunc {
	return func(fields types.Fields) checkResult {
		witnesses, state := listField(fields, "witnesses")
		res := checkResult{
			satisfied: state == fieldOK && len(witnesses) >= minWitnesses,
			code:      "insufficient_witnesses",
			message:   fmt.Sprintf("Document has %d witnesses, at least %d are required", len(witnesses), minWitnesses),
			remedy:    remedy,
		}
		if state == fieldMalformed {
			res.malformed = []string{"witnesses"}
		}
		return res
	}
}

func requireExecutors(fields types.Fields) checkResult {
	executors, state := listField(fields, "executors")
	res := checkResult{
		satisfied: state == fieldOK && len(executors) >= 1,
		code:      "missing_executor",
		message:   "No executor (estate trustee) is named in the will",
		remedy:    "Name at least one executor to administer the estate",
	}
	if state == fieldMalformed {
		res.malformed = []string{"executors"}
	}
	return res
}

func requireAttorneys(remedy string) checkFunc {
	return func(fields types.Fields) checkResult {
		attorneys, state := listField(fields, "attorneys")
		res := checkResult{
			satisfied: state == fieldOK && len(attorneys) >= 1,
			code:      "missing_attorney",
			message:   "No attorney is named in the power of attorney",
			remedy:    remedy,
		}
		if state == fieldMalformed {
			res.malformed = []string{"attorneys"}
		}
		return res
	}
}

// checkBeneficiaryWitness flags witnesses who are also named beneficiaries.
// Only fires when both lists are present; absence is not a violation.
func checkBeneficiaryWitness(fields types.Fields) checkResult {
	res := checkResult{satisfied: true, code: "beneficiary_witness", severity: types.SeverityMajor}

	witnesses, wState := listField(fields, "witnesses")
	if wState == fieldMalformed {
		res.malformed = append(res.malformed, "witnesses")
	}
	beneficiaries, bState := listField(fields, "beneficiaries")
	if bState == fieldMalformed {
		res.malformed = append(res.malformed, "beneficiaries")
	}
	if wState != fieldOK || bState != fieldOK {
		return res
	}

	beneficiaryNames := namesOf(beneficiaries)
	for _, witness := range witnesses {
		name := strings.ToLower(entryName(witness))
		if name == "" {
			continue
		}
		if slices.Contains(beneficiaryNames, name) {
			res.satisfied = false
			res.message = fmt.Sprintf("Witness %q is also a named beneficiary; the gift to them is void under s. 12", entryName(witness))
			res.remedy = "Replace the witness with a person who takes no benefit under the will"
			return res
		}
	}
	return res
}

// checkTestatorAge warns when the supplied testator age is below 18.
func checkTestatorAge(fields types.Fields) checkResult {
	res := checkResult{satisfied: true, code: "underage_testator", severity: types.SeverityMinor}

	age, state := numberField(fields, "testator_age")
	if state == fieldMalformed {
		res.malformed = []string{"testator_age"}
		return res
	}
	if state == fieldOK && age < 18 {
		res.satisfied = false
		res.message = fmt.Sprintf("Testator is %d years old; a will made under the age of 18 is not valid absent a statutory exception", int(age))
		res.remedy = "Confirm the testator is 18 or older, or that a s. 8(1) exception applies"
	}
	return res
}

// checkCapacityConfirmed warns when capacity is explicitly recorded as not
// confirmed. Absence of the field is not a violation.
func checkCapacityConfirmed(fields types.Fields) checkResult {
	res := checkResult{satisfied: true, code: "capacity_not_confirmed", severity: types.SeverityMajor}

	confirmed, state := boolField(fields, "capacity_confirmed")
	if state == fieldMalformed {
		res.malformed = []string{"capacity_confirmed"}
		return res
	}
	if state == fieldOK && !confirmed {
		res.satisfied = false
		res.message = "Capacity of the signatory has not been confirmed"
		res.remedy = "Obtain and document a capacity assessment before execution"
	}
	return res
}

// checkContinuingClause warns when the instrument is explicitly marked as
// not continuing, since authority then ends on the grantor's incapacity.
func checkContinuingClause(fields types.Fields) checkResult {
	res := checkResult{satisfied: true, code: "not_continuing", severity: types.SeverityMinor}

	continuing, state := boolField(fields, "continuing")
	if state == fieldMalformed {
		res.malformed = []string{"continuing"}
		return res
	}
	if state == fieldOK && !continuing {
		res.satisfied = false
		res.message = "The power of attorney is not expressed as continuing and will terminate on the grantor's incapacity"
		res.remedy = "Add wording that the power of attorney is continuing and may be exercised during incapacity"
	}
	return res
}

// checkWitnessEligibility flags witnesses with a statutorily excluded
// relationship to the grantor, or who are themselves the named attorney.
func checkWitnessEligibility(fields types.Fields) checkResult {
	res := checkResult{satisfied: true, code: "ineligible_witness", severity: types.SeverityMajor}

	witnesses, wState := listField(fields, "witnesses")
	if wState == fieldMalformed {
		res.malformed = append(res.malformed, "witnesses")
	}
	attorneys, aState := listField(fields, "attorneys")
	if aState == fieldMalformed {
		res.malformed = append(res.malformed, "attorneys")
	}
	if wState != fieldOK {
		return res
	}

	var attorneyNames []string
	if aState == fieldOK {
		attorneyNames = namesOf(attorneys)
	}

	for _, witness := range witnesses {
		name := entryName(witness)
		relationship := strings.ToLower(entryString(witness, "relationship"))

		if slices.Contains(excludedWitnessRelationships, relationship) {
			res.satisfied = false
			res.message = fmt.Sprintf("Witness %q is the grantor's %s and may not act as a witness", name, relationship)
			res.remedy = "Replace the witness with a person outside the statutory exclusions"
			return res
		}
		if name != "" && slices.Contains(attorneyNames, strings.ToLower(name)) {
			res.satisfied = false
			res.message = fmt.Sprintf("Witness %q is also the named attorney and may not act as a witness", name)
			res.remedy = "Replace the witness with a person outside the statutory exclusions"
			return res
		}
	}
	return res
}

// checkPaidCareProvider flags attorneys for personal care who provide paid
// care services to the grantor.
func checkPaidCareProvider(fields types.Fields) checkResult {
	res := checkResult{satisfied: true, code: "paid_care_provider_attorney", severity: types.SeverityMajor}

	attorneys, state := listField(fields, "attorneys")
	if state == fieldMalformed {
		res.malformed = []string{"attorneys"}
		return res
	}
	if state != fieldOK {
		return res
	}

	for _, attorney := range attorneys {
		if entryBool(attorney, "paid_care_provider") {
			res.satisfied = false
			res.message = fmt.Sprintf("Attorney %q provides paid care services to the grantor and may not act unless a family exception applies", entryName(attorney))
			res.remedy = "Appoint an attorney who does not provide paid care to the grantor, or document the family relationship"
			return res
		}
	}
	return res
}
