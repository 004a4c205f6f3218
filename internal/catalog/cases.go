package catalog

import "github.com/mlaurier/doccheck/internal/types"

// caseReferences is the built-in precedent index. Entries are retrieval
// material for citations only; ordering is load order and acts as the
// tie-break for relevance scoring, so append new cases at the end.
var caseReferences = []types.CaseReference{
	{
		CaseName: "Banks v Goodfellow",
		Citation: "(1870), L.R. 5 Q.B. 549",
		Year:     1870,
		Court:    "Court of Queen's Bench",
		Summary:  "Foundational test for testamentary capacity: the testator must understand the nature of the act of making a will, the extent of the property disposed of, and the claims of those who might expect to benefit.",
		KeyPrinciples: []string{
			"The testator must understand the nature and effect of making a will",
			"Capacity requires appreciation of the extent of the property being disposed of",
			"A disorder of the mind poisons the affections only if it influences the dispositions made",
		},
		Outcome:       "will upheld",
		RelevanceTags: []string{"will", "capacity", "testamentary capacity"},
	},
	{
		CaseName: "Vout v Hay",
		Citation: "[1995] 2 S.C.R. 876",
		Year:     1995,
		Court:    "Supreme Court of Canada",
		Summary:  "Suspicious circumstances surrounding the preparation or execution of a will shift the burden to the propounder to prove knowledge, approval and capacity; undue influence must be proven by those attacking the will.",
		KeyPrinciples: []string{
			"Suspicious circumstances require the propounder to prove capacity and knowledge and approval",
			"The burden of proving undue influence rests on the party alleging it",
		},
		Outcome:       "will upheld",
		RelevanceTags: []string{"will", "capacity", "undue influence", "dispute", "suspicious circumstances"},
	},
	{
		CaseName: "Banton v Banton",
		Citation: "1998 CanLII 14926 (ON SC)",
		Year:     1998,
		Court:    "Ontario Court (General Division)",
		Summary:  "An elderly testator's wills and powers of attorney made in favour of a much younger spouse were set aside for lack of capacity and undue influence; capacity to marry is distinct from testamentary capacity.",
		KeyPrinciples: []string{
			"Testamentary capacity demands more than capacity to marry",
			"Dependence and isolation of the testator support a finding of undue influence",
			"A power of attorney granted without capacity is void",
		},
		Outcome:       "will set aside",
		RelevanceTags: []string{"will", "poa_property", "capacity", "undue influence", "attorney"},
	},
	{
		CaseName: "Neuberger v York",
		Citation: "2016 ONCA 191",
		Year:     2016,
		Court:    "Ontario Court of Appeal",
		Summary:  "An interested person does not have an automatic right to compel proof of a will in solemn form; the applicant must adduce some evidence that, if accepted, would call the will's validity into question.",
		KeyPrinciples: []string{
			"A will challenge requires a minimal evidentiary foundation before proof in solemn form is ordered",
			"Courts retain a gatekeeper role over estate litigation",
		},
		Outcome:       "challenge dismissed",
		RelevanceTags: []string{"will", "dispute", "contest", "challenge"},
	},
	{
		CaseName: "Stekar v Wilcox",
		Citation: "2017 ONCA 1010",
		Year:     2017,
		Court:    "Ontario Court of Appeal",
		Summary:  "A will executed by a hospitalized testator shortly before death was set aside where suspicious circumstances were not answered by affirmative proof of testamentary capacity.",
		KeyPrinciples: []string{
			"Illness and medication near the time of execution are classic suspicious circumstances",
			"The propounder must affirmatively prove capacity once suspicion is raised",
		},
		Outcome:       "will set aside",
		RelevanceTags: []string{"will", "capacity", "suspicious circumstances", "execution"},
	},
	{
		CaseName: "Hall v Bennett Estate",
		Citation: "2003 CanLII 7157 (ON CA)",
		Year:     2003,
		Court:    "Ontario Court of Appeal",
		Summary:  "A solicitor who declined to take instructions from a dying man owed no duty to the intended beneficiary; a retainer requires a testator capable of giving instructions.",
		KeyPrinciples: []string{
			"A solicitor must assess capacity before accepting will instructions",
			"No duty of care arises to a disappointed beneficiary absent a retainer",
		},
		Outcome:       "claim dismissed",
		RelevanceTags: []string{"will", "capacity", "execution", "solicitor"},
	},
	{
		CaseName: "Gironda v Gironda",
		Citation: "2013 ONSC 4133",
		Year:     2013,
		Court:    "Ontario Superior Court of Justice",
		Summary:  "Powers of attorney and inter vivos transfers procured from an elderly mother with dementia were set aside; the court reviewed indicators of incapacity and the fiduciary duties of attorneys for property.",
		KeyPrinciples: []string{
			"An attorney for property is a fiduciary and must account for dealings with the grantor's assets",
			"Cognitive decline at the time of granting a power of attorney invites close scrutiny",
		},
		Outcome:       "power of attorney set aside",
		RelevanceTags: []string{"poa_property", "capacity", "undue influence", "attorney", "abuse"},
	},
	{
		CaseName: "Fareed v Wood",
		Citation: "2005 CanLII 22134 (ON SC)",
		Year:     2005,
		Court:    "Ontario Superior Court of Justice",
		Summary:  "An attorney for property who used the grantor's funds for personal benefit breached fiduciary duty; the court ordered repayment and removal of the attorney.",
		KeyPrinciples: []string{
			"An attorney may not profit from the position absent express authorization",
			"Courts will remove attorneys who cannot account for the grantor's property",
		},
		Outcome:       "attorney removed",
		RelevanceTags: []string{"poa_property", "attorney", "abuse", "fiduciary"},
	},
	{
		CaseName: "Koch (Re)",
		Citation: "1997 CanLII 12138 (ON SC)",
		Year:     1997,
		Court:    "Ontario Court (General Division)",
		Summary:  "Capacity assessments for personal care and property must respect the presumption of capacity; assessors and evaluators must weigh the wishes of the person assessed and guard against interested informants.",
		KeyPrinciples: []string{
			"A person is presumed capable until the contrary is demonstrated",
			"Capacity is decision-specific, not global",
			"Assessors must be alert to the motives of those requesting an assessment",
		},
		Outcome:       "finding of incapacity set aside",
		RelevanceTags: []string{"poa_personal_care", "poa_property", "capacity", "assessment"},
	},
	{
		CaseName: "Nguyen-Crawford v Nguyen",
		Citation: "2010 ONSC 6836",
		Year:     2010,
		Court:    "Ontario Superior Court of Justice",
		Summary:  "A power of attorney executed by a grantor who spoke no English, prepared and translated by the attorney who benefited from it, was invalid; informed understanding of the instrument is essential.",
		KeyPrinciples: []string{
			"The grantor must understand the instrument at execution",
			"An attorney who procures and benefits from the grant bears the burden of explaining the circumstances",
		},
		Outcome:       "power of attorney invalid",
		RelevanceTags: []string{"poa_personal_care", "poa_property", "undue influence", "execution", "witnesses"},
	},
}
