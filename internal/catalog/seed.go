package catalog

// seedQuestions is the fixed 25-question instrument: four prompts per
// category, five for threshold fear.
var seedQuestions = []Question{
	// Misalignment (4)
	{ID: "Q1", Text: "Is real effort being invested in something that does not actually matter?", Categories: []Category{CategoryMisalignment}},
	{ID: "Q2", Text: "Is it difficult to clearly explain why the current direction deserves the next five years?", Categories: []Category{CategoryMisalignment}},
	{ID: "Q3", Text: "Is activity being mistaken for progress?", Categories: []Category{CategoryMisalignment}},
	{ID: "Q4", Text: "Has too much time been invested to admit the wrong ladder may be involved?", Categories: []Category{CategoryMisalignment}},

	// Pressure avoidance (4)
	{ID: "Q5", Text: "Does performance degrade when pressure increases instead of sharpening?", Categories: []Category{CategoryPressureAvoidance}},
	{ID: "Q6", Text: "Are situations avoided where failure would be visible and undeniable?", Categories: []Category{CategoryPressureAvoidance}},
	{ID: "Q7", Text: "Are comfort tasks prioritized over consequential ones?", Categories: []Category{CategoryPressureAvoidance}},
	{ID: "Q8", Text: "Is operation occurring below actual capacity because it feels safer?", Categories: []Category{CategoryPressureAvoidance}},

	// Execution avoidance (4)
	{ID: "Q9", Text: "Is long-term progress being traded for short-term relief?", Categories: []Category{CategoryExecutionAvoidance}},
	{ID: "Q10", Text: "Is lack of time claimed while time allocation is still controlled?", Categories: []Category{CategoryExecutionAvoidance}},
	{ID: "Q11", Text: "Are days primarily reactive rather than intentional?", Categories: []Category{CategoryExecutionAvoidance}},
	{ID: "Q12", Text: "Are hard decisions delayed until urgency removes choice?", Categories: []Category{CategoryExecutionAvoidance}},

	// Resource misuse (4)
	{ID: "Q13", Text: "Does spending contradict stated priorities?", Categories: []Category{CategoryResourceMisuse}},
	{ID: "Q14", Text: "Is financial clarity avoided because it would force change?", Categories: []Category{CategoryResourceMisuse}},
	{ID: "Q15", Text: "Are resources used to manage discomfort instead of fixing root problems?", Categories: []Category{CategoryResourceMisuse}},
	{ID: "Q16", Text: "Is short-term relief chosen even when it creates long-term pressure?", Categories: []Category{CategoryResourceMisuse}},

	// Relationship constraint (4)
	{ID: "Q17", Text: "Does at least one key relationship benefit from things staying exactly as they are?", Categories: []Category{CategoryRelationshipConstraint}},
	{ID: "Q18", Text: "Is ambition limited to avoid disruption or conflict?", Categories: []Category{CategoryRelationshipConstraint}},
	{ID: "Q19", Text: "Is honesty withheld to preserve access, approval, or stability?", Categories: []Category{CategoryRelationshipConstraint}},
	{ID: "Q20", Text: "Is it already clear who would be uncomfortable if change occurred?", Categories: []Category{CategoryRelationshipConstraint}},

	// Threshold fear (5)
	{ID: "Q21", Text: "Is success distrusted because of fear of losing control?", Categories: []Category{CategoryThresholdFear}},
	{ID: "Q22", Text: "Are exit routes kept open so full commitment is never required?", Categories: []Category{CategoryThresholdFear}},
	{ID: "Q23", Text: "Is retreat chosen when consistency becomes non-negotiable?", Categories: []Category{CategoryThresholdFear}},
	{ID: "Q24", Text: "Is scope kept small to keep responsibility manageable?", Categories: []Category{CategoryThresholdFear}},
	{ID: "Q25", Text: "If nothing changes, is the outcome already known—and being tolerated?", Categories: []Category{CategoryThresholdFear}},
}
