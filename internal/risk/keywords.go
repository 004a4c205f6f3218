package risk

// freeTextFields are the field names scanned for risk keywords, in fixed
// order so factor output is deterministic.
var freeTextFields = []string{
	"special_instructions",
	"notes",
	"additional_provisions",
	"care_instructions",
}

// keywordCategory is a named group of risk-indicating words. Each match
// contributes keywordIncrement to the risk score, capped overall at
// freeTextCap.
type keywordCategory struct {
	name     string
	keywords []string
}

// keywordCategories is the fixed keyword table, scanned in order. Matching
// is case-insensitive substring search.
var keywordCategories = []keywordCategory{
	{
		name: "dispute",
		keywords: []string{
			"contest",
			"dispute",
			"challenge",
			"abuse",
			"undue influence",
			"decline",
			"estranged",
			"disinherit",
		},
	},
	{
		name: "capacity",
		keywords: []string{
			"dementia",
			"alzheimer",
			"confusion",
			"memory loss",
			"medication",
			"hospitalized",
		},
	},
	{
		name: "influence",
		keywords: []string{
			"pressure",
			"isolated",
			"dependent",
			"caregiver",
			"secrecy",
		},
	},
}
