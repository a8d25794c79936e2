package engine

import "strings"

// Intent is the classified purpose of a query.
type Intent string

// Intents used across categories. Crop topic buckets reuse the crop intents
// plus IntentSoil.
const (
	IntentGeneral Intent = "general"

	IntentGrow       Intent = "grow"
	IntentWater      Intent = "water"
	IntentSoil       Intent = "soil"
	IntentFertilizer Intent = "fertilizer"
	IntentPest       Intent = "pest"
	IntentYield      Intent = "yield"
	IntentTiming     Intent = "timing"

	IntentControl  Intent = "control"
	IntentPrevent  Intent = "prevent"
	IntentOrganic  Intent = "organic"
	IntentIdentify Intent = "identify"

	IntentQuantity   Intent = "quantity"
	IntentDeficiency Intent = "deficiency"
	IntentRecommend  Intent = "recommend"
	IntentChemical   Intent = "chemical"
	IntentSoilTest   Intent = "soil-test"
	IntentExcess     Intent = "excess"
)

// rule fires its intent when any cue is a substring of the lowercased query.
type rule struct {
	intent Intent
	cues   []string
}

func (r rule) matches(lower string) bool {
	for _, cue := range r.cues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}

// ruleSet is evaluated top to bottom. Order is precedence.
type ruleSet []rule

// first returns the intent of the first matching rule, or fallback.
func (rs ruleSet) first(lower string, fallback Intent) Intent {
	for _, r := range rs {
		if r.matches(lower) {
			return r.intent
		}
	}
	return fallback
}

// last returns the intent of the last matching rule, or fallback.
func (rs ruleSet) last(lower string, fallback Intent) Intent {
	got := fallback
	for _, r := range rs {
		if r.matches(lower) {
			got = r.intent
		}
	}
	return got
}

// intents returns the intents of the set in precedence order.
func (rs ruleSet) intents() []Intent {
	out := make([]Intent, len(rs))
	for i, r := range rs {
		out[i] = r.intent
	}
	return out
}

var (
	cropRules = ruleSet{
		{IntentGrow, []string{"how to grow", "how do i grow", "grow", "plant", "cultivat"}},
		{IntentWater, []string{"water", "irrigat", "watering"}},
		{IntentFertilizer, []string{"fertilizer", "nutrient", "feeding"}},
		{IntentPest, []string{"pest", "disease", "control", "problem"}},
		{IntentYield, []string{"yield", "harvest", "production"}},
		{IntentTiming, []string{"when", "time", "season"}},
	}

	pestRules = ruleSet{
		{IntentControl, []string{"control", "treat", "kill", "get rid"}},
		{IntentPrevent, []string{"prevent", "avoid"}},
	}

	pestTopicRules = ruleSet{
		{IntentControl, []string{"control", "treat", "manage"}},
		{IntentOrganic, []string{"organic", "natural"}},
		{IntentPrevent, []string{"prevent", "avoid"}},
		{IntentIdentify, []string{"identify", "what", "recognize"}},
	}

	nutrientRules = ruleSet{
		{IntentTiming, []string{"when", "apply", "timing"}},
		{IntentQuantity, []string{"how much", "amount", "rate", "quantity"}},
		{IntentDeficiency, []string{"deficiency", "symptoms", "signs"}},
	}

	cropFertilizerRules = ruleSet{
		{IntentRecommend, []string{"what", "which", "recommend", "best"}},
	}

	fertilizerTopicRules = ruleSet{
		{IntentOrganic, []string{"organic", "natural"}},
		{IntentChemical, []string{"chemical", "synthetic"}},
		{IntentSoilTest, []string{"soil test", "test"}},
		{IntentExcess, []string{"over", "too much", "excess"}},
	}

	// cropBuckets pick the fallback topic for crop queries with no crop named.
	// Unlike the rule sets above, the last matching bucket wins unless the
	// engine is configured for first-match.
	cropBuckets = ruleSet{
		{IntentGrow, []string{"grow"}},
		{IntentWater, []string{"water"}},
		{IntentSoil, []string{"soil"}},
		{IntentFertilizer, []string{"fertilizer"}},
		{IntentPest, []string{"pest"}},
	}
)
