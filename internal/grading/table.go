// Package grading converts percentage scores into decimal grades on the OMBA
// scale and combines the written-thesis and defense scores into the weighted
// overall result.
package grading

// thresholdEntry maps a minimum percentage score to its decimal grade.
type thresholdEntry struct {
	Threshold float64
	Grade     float64
}

// gradeTable is the OMBA Notenübersicht (Dezimalnote) lookup, hand-curated
// from the externally mandated scale and sorted by threshold descending.
// The scale is non-uniform, so it stays explicit data rather than a formula.
// For a score p the grade of the first row with Threshold <= p applies.
var gradeTable = []thresholdEntry{
	{100, 1.0}, {99, 1.0}, {98, 1.0},
	{97, 1.1}, {96.4, 1.1},
	{96, 1.2}, {95, 1.2}, {94.8, 1.2},
	{94, 1.3}, {93.2, 1.3},
	{93, 1.4}, {92, 1.4}, {91.6, 1.4},
	{91, 1.5}, {90, 1.5},
	{89, 1.6}, {88.4, 1.6},
	{88, 1.7}, {87, 1.7}, {86.8, 1.7},
	{86, 1.8}, {85.2, 1.8},
	{85, 1.9}, {84, 1.9}, {83.6, 1.9},
	{83, 2.0}, {82, 2.0},
	{81, 2.1}, {80.4, 2.1},
	{80, 2.2}, {79, 2.2}, {78.8, 2.2},
	{78, 2.3}, {77.2, 2.3},
	{77, 2.4}, {76, 2.4}, {75.6, 2.4},
	{75, 2.5}, {74, 2.5},
	{73, 2.6}, {72.4, 2.6},
	{72, 2.7}, {71, 2.7}, {70.8, 2.7},
	{70, 2.8}, {69.2, 2.8},
	{69, 2.9}, {68, 2.9}, {67.6, 2.9},
	{67, 3.0}, {66, 3.0},
	{65, 3.1}, {64.4, 3.1},
	{64, 3.2}, {63, 3.2}, {62.8, 3.2},
	{62, 3.3}, {61.2, 3.3},
	{61, 3.4}, {60, 3.4}, {59.6, 3.4},
	{59, 3.5}, {58, 3.5},
	{57, 3.6}, {56.4, 3.6},
	{56, 3.7}, {55, 3.7}, {54.8, 3.7},
	{54, 3.8}, {53.2, 3.8},
	{53, 3.9}, {52, 3.9}, {51.6, 3.9},
	{51, 4.0}, {50, 4.0},
}
