package constants

// NumCriteria is the number of evaluation criterion rows on the Part 1 form.
// The ninth row carries an assessor-defined label.
const NumCriteria = 9

// OwnCriterionLabel is the placeholder label for the ninth, free-form criterion.
const OwnCriterionLabel = "[Own criterion]"

// CriteriaLabels holds the fixed labels of the Part 1 evaluation grid, in
// display order. Index 8 is replaced by the evaluation's own criterion label.
var CriteriaLabels = []string{
	"Selection and knowledge of the topic",
	"Structure and organization of the thesis",
	"Analysis skills and conceptual framework",
	"Arguments and evidence used and developed",
	"Use of Literature",
	"Results and conclusion",
	"Linguistic skills",
	"Overall formal quality of the thesis",
	OwnCriterionLabel,
}

// NumDefenseTopics is the number of topic/answer rows on the defense protocol.
const NumDefenseTopics = 6
