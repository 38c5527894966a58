package assessment

import "github.com/yungbote/asmtgen/internal/domain"

// gradeScale is one subject/grade scoring scale: overall range plus the
// three cut points separating the four performance levels.
type gradeScale struct {
	min  int
	cuts [3]int
	max  int
}

// Vertical scales per subject and grade. Claims inherit the overall range
// of their assessment, so no separate claim scales exist.
var overallScales = map[string]map[int]gradeScale{
	domain.SubjectELA: {
		3:  {2114, [3]int{2367, 2432, 2490}, 2623},
		4:  {2131, [3]int{2416, 2473, 2533}, 2663},
		5:  {2201, [3]int{2442, 2502, 2582}, 2701},
		6:  {2210, [3]int{2457, 2531, 2618}, 2724},
		7:  {2258, [3]int{2479, 2552, 2649}, 2745},
		8:  {2288, [3]int{2487, 2567, 2668}, 2769},
		11: {2299, [3]int{2493, 2583, 2682}, 2795},
	},
	domain.SubjectMath: {
		3:  {2189, [3]int{2381, 2436, 2501}, 2621},
		4:  {2204, [3]int{2411, 2485, 2549}, 2659},
		5:  {2219, [3]int{2455, 2528, 2579}, 2700},
		6:  {2235, [3]int{2473, 2552, 2610}, 2748},
		7:  {2250, [3]int{2484, 2567, 2635}, 2778},
		8:  {2265, [3]int{2504, 2586, 2653}, 2802},
		11: {2280, [3]int{2543, 2628, 2718}, 2862},
	},
}

// claimNames lists the claim dimensions per subject, padded with empty
// strings to four entries; an empty name becomes a nil claim placeholder.
var claimNames = map[string][4]string{
	domain.SubjectELA: {
		"Reading",
		"Writing",
		"Listening",
		"Research & Inquiry",
	},
	domain.SubjectMath: {
		"Concepts & Procedures",
		"Problem Solving and Modeling & Data Analysis",
		"Communicating Reasoning",
		"",
	},
}

var perfLevelNames = []string{
	"Minimal Understanding",
	"Partial Understanding",
	"Adequate Understanding",
	"Thorough Understanding",
}

var claimPerfLevelNames = []string{
	"Below Standard",
	"At/Near Standard",
	"Above Standard",
}

// itemTypeDef drives item bank generation for one response format.
type itemTypeDef struct {
	format       string
	weight       int
	maxScore     int
	optionsCount int
}

var itemTypes = []itemTypeDef{
	{"MC", 40, 1, 4},
	{"MS", 15, 2, 6},
	{"EBSR", 10, 1, 0},
	{"SA", 10, 2, 0},
	{"WER", 5, 6, 0},
	{"EQ", 10, 1, 0},
	{"MI", 5, 1, 0},
	{"TI", 5, 1, 0},
}

// DefaultItemBankSize is the item count generated per assessment when no
// explicit size is configured.
const DefaultItemBankSize = 130

const optionLetters = "ABCDEFGH"
