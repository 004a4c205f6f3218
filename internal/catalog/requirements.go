package catalog

import "github.com/mlaurier/doccheck/internal/types"

// Statute citation strings used across the requirement tables. Display only.
const (
	statuteSLRA = "Succession Law Reform Act, R.S.O. 1990, c. S.26"
	statuteSDA  = "Substitute Decisions Act, 1992, S.O. 1992, c. 30"
	statuteEA   = "Estates Act, R.S.O. 1990, c. E.21"
)

// willRequirements are the Ontario rules for a last will and testament.
// Mandatory requirements fail compliance when violated; optional ones only
// produce warnings, and only when affirmatively violated (never on absence).
var willRequirements = []types.Requirement{
	{
		ID:          "slra_s4_signature",
		Title:       "Testator signature",
		Description: "The will must be signed by the testator at its end, with the date of execution recorded.",
		Statute:     statuteSLRA,
		Section:     "s. 4(1)(a)",
		Mandatory:   true,
		Category:    "execution",
		Conditions: []string{
			"signature_date is present and non-empty",
		},
		Exceptions: []string{
			"holograph will wholly in the testator's handwriting (s. 6)",
		},
	},
	{
		ID:          "slra_s4_witnesses",
		Title:       "Two attesting witnesses",
		Description: "The testator must sign or acknowledge the signature in the presence of two or more attesting witnesses present at the same time.",
		Statute:     statuteSLRA,
		Section:     "s. 4(1)(b)-(c)",
		Mandatory:   true,
		Category:    "witnesses",
		Conditions: []string{
			"witnesses contains at least 2 entries",
		},
		Exceptions: []string{
			"holograph will requires no witnesses (s. 6)",
		},
	},
	{
		ID:          "ea_executor_appointment",
		Title:       "Executor appointment",
		Description: "The will must name at least one executor (estate trustee) to administer the estate.",
		Statute:     statuteEA,
		Section:     "s. 29",
		Mandatory:   true,
		Category:    "executor",
		Conditions: []string{
			"executors contains at least 1 entry",
		},
	},
	{
		ID:          "slra_s12_beneficiary_witness",
		Title:       "Witness is not a beneficiary",
		Description: "A bequest to an attesting witness, or to the spouse of an attesting witness, is void unless the court is satisfied there was no improper influence.",
		Statute:     statuteSLRA,
		Section:     "s. 12(1)",
		Mandatory:   false,
		Category:    "witnesses",
		Conditions: []string{
			"no witness name appears among the named beneficiaries",
		},
		Exceptions: []string{
			"court order under s. 12(3)",
		},
	},
	{
		ID:          "slra_s8_testator_age",
		Title:       "Testator is of age",
		Description: "A will made by a person under the age of eighteen is not valid.",
		Statute:     statuteSLRA,
		Section:     "s. 8(1)",
		Mandatory:   false,
		Category:    "capacity",
		Conditions: []string{
			"testator_age, when supplied, is at least 18",
		},
		Exceptions: []string{
			"testator is or has been married (s. 8(1)(a))",
			"testator is a member of the armed forces on active service (s. 8(1)(b))",
		},
	},
	{
		ID:          "will_testamentary_capacity",
		Title:       "Testamentary capacity confirmed",
		Description: "The testator must understand the nature of making a will, the extent of their property, and the claims of those who might expect to benefit.",
		Statute:     "Common law",
		Section:     "Banks v Goodfellow test",
		Mandatory:   false,
		Category:    "capacity",
		Conditions: []string{
			"capacity_confirmed, when supplied, is true",
		},
	},
}

// poaPropertyRequirements are the rules for a continuing power of attorney
// for property.
var poaPropertyRequirements = []types.Requirement{
	{
		ID:          "sda_s7_attorney_appointment",
		Title:       "Attorney appointment",
		Description: "The power of attorney must name at least one attorney for property.",
		Statute:     statuteSDA,
		Section:     "s. 7",
		Mandatory:   true,
		Category:    "attorney",
		Conditions: []string{
			"attorneys contains at least 1 entry",
		},
	},
	{
		ID:          "sda_s10_witnesses",
		Title:       "Two witnesses to execution",
		Description: "The continuing power of attorney must be executed in the presence of two witnesses, each of whom signs as witness.",
		Statute:     statuteSDA,
		Section:     "s. 10(1)",
		Mandatory:   true,
		Category:    "witnesses",
		Conditions: []string{
			"witnesses contains at least 2 entries",
		},
	},
	{
		ID:          "sda_s10_execution",
		Title:       "Executed and dated",
		Description: "The instrument must be signed by the grantor with the date of execution recorded.",
		Statute:     statuteSDA,
		Section:     "s. 10(1)",
		Mandatory:   true,
		Category:    "execution",
		Conditions: []string{
			"signature_date is present and non-empty",
		},
	},
	{
		ID:          "sda_s10_2_witness_eligibility",
		Title:       "Witness eligibility",
		Description: "The attorney, the attorney's spouse or partner, the grantor's spouse or partner, and a child of the grantor may not act as witnesses.",
		Statute:     statuteSDA,
		Section:     "s. 10(2)",
		Mandatory:   false,
		Category:    "witnesses",
		Conditions: []string{
			"no witness is the named attorney or records an excluded relationship to the grantor",
		},
	},
	{
		ID:          "sda_s8_grantor_capacity",
		Title:       "Grantor capacity confirmed",
		Description: "The grantor must be capable of giving a continuing power of attorney for property, understanding the property involved and the authority granted.",
		Statute:     statuteSDA,
		Section:     "s. 8",
		Mandatory:   false,
		Category:    "capacity",
		Conditions: []string{
			"capacity_confirmed, when supplied, is true",
		},
	},
	{
		ID:          "sda_s7_1_continuing_clause",
		Title:       "Continuing authority expressed",
		Description: "For the authority to survive the grantor's incapacity, the instrument must express that it is a continuing power of attorney or that it may be exercised during incapacity.",
		Statute:     statuteSDA,
		Section:     "s. 7(1)",
		Mandatory:   false,
		Category:    "execution",
		Conditions: []string{
			"continuing, when supplied, is true",
		},
	},
}

// poaPersonalCareRequirements are the rules for a power of attorney for
// personal care.
var poaPersonalCareRequirements = []types.Requirement{
	{
		ID:          "sda_s46_attorney_appointment",
		Title:       "Attorney appointment",
		Description: "The power of attorney must name at least one attorney for personal care.",
		Statute:     statuteSDA,
		Section:     "s. 46(1)",
		Mandatory:   true,
		Category:    "attorney",
		Conditions: []string{
			"attorneys contains at least 1 entry",
		},
	},
	{
		ID:          "sda_s48_witnesses",
		Title:       "Two witnesses to execution",
		Description: "The power of attorney for personal care must be executed in the presence of two witnesses, each of whom signs as witness.",
		Statute:     statuteSDA,
		Section:     "s. 48(1)",
		Mandatory:   true,
		Category:    "witnesses",
		Conditions: []string{
			"witnesses contains at least 2 entries",
		},
	},
	{
		ID:          "sda_s48_execution",
		Title:       "Executed and dated",
		Description: "The instrument must be signed by the grantor with the date of execution recorded.",
		Statute:     statuteSDA,
		Section:     "s. 48(1)",
		Mandatory:   true,
		Category:    "execution",
		Conditions: []string{
			"signature_date is present and non-empty",
		},
	},
	{
		ID:          "sda_s46_3_care_provider",
		Title:       "Attorney is not a paid care provider",
		Description: "A person who provides health care, residential, social, training or support services to the grantor for compensation may not act as attorney unless they are the grantor's spouse, partner or relative.",
		Statute:     statuteSDA,
		Section:     "s. 46(3)",
		Mandatory:   false,
		Category:    "attorney",
		Conditions: []string{
			"no attorney entry is flagged as a paid care provider of the grantor",
		},
		Exceptions: []string{
			"attorney is the grantor's spouse, partner or relative",
		},
	},
	{
		ID:          "sda_s48_2_witness_eligibility",
		Title:       "Witness eligibility",
		Description: "The attorney, the attorney's spouse or partner, the grantor's spouse or partner, and a child of the grantor may not act as witnesses.",
		Statute:     statuteSDA,
		Section:     "s. 48(2)",
		Mandatory:   false,
		Category:    "witnesses",
		Conditions: []string{
			"no witness is the named attorney or records an excluded relationship to the grantor",
		},
	},
	{
		ID:          "sda_s47_grantor_capacity",
		Title:       "Grantor capacity confirmed",
		Description: "The grantor must understand whether the proposed attorney has genuine concern for their welfare and appreciate that the attorney may need to make personal care decisions for them.",
		Statute:     statuteSDA,
		Section:     "s. 47(1)",
		Mandatory:   false,
		Category:    "capacity",
		Conditions: []string{
			"capacity_confirmed, when supplied, is true",
		},
	},
}
