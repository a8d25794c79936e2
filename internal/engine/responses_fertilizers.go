package engine

var nutrientTable = templateTable{
	specific: map[Intent]map[string][]string{
		IntentTiming: {
			"nitrogen": {
				"{fact} Apply nitrogen in 3-4 split applications: at planting, during vegetative growth, at flowering and during grain filling. Split applications reduce losses and improve uptake.",
				"{fact} Nitrogen timing matters: use 3-4 split applications starting at planting and continuing through the main growth stages so the crop has nitrogen when it needs it most.",
				"{fact} For best results, apply nitrogen in 3-4 split applications rather than all at once. Side-dress during rapid vegetative growth and avoid applying before heavy rain.",
			},
			"phosphorus": {
				"{fact} Apply phosphorus at planting time as it is needed for early root development. Band placement near the seed is most effective.",
				"{fact} Phosphorus should go in before or at planting. It moves little in soil, so place it close to where roots will grow.",
				"{fact} Most phosphorus should be applied at sowing. Late applications are far less effective because early root growth depends on it.",
			},
			"potassium": {
				"{fact} Apply potassium before planting or at planting time. It can also be applied during the growing season if deficiency symptoms appear.",
				"{fact} Potassium is best applied at or before planting, with a top-up during fruit or grain development on sandy soils that leach.",
				"{fact} Time potassium applications before planting on most soils. Split it on light soils to reduce leaching losses.",
			},
			"npk": {
				"{fact} Apply a balanced NPK blend as a basal dose at planting, then top-dress nitrogen separately during active growth.",
				"{fact} Use NPK at sowing so phosphorus and potassium are in place early. Follow with nitrogen-only top dressings as the crop develops.",
				"{fact} Balanced NPK works best as a pre-plant or at-planting application. Adjust later doses according to crop response and soil tests.",
			},
		},
		IntentQuantity: {
			"nitrogen":   {"{fact} Nitrogen requirements vary by crop: cereals need 100-150 kg/ha, vegetables 150-200 kg/ha. Always base rates on soil test results."},
			"phosphorus": {"{fact} Phosphorus rates typically range from 40-80 kg/ha depending on soil test results and crop requirements."},
			"potassium":  {"{fact} Potassium rates range from 50-150 kg/ha depending on soil type, crop needs and soil test results."},
		},
		IntentDeficiency: {
			"nitrogen":   {"{fact} Nitrogen deficiency shows as yellowing of older leaves first, stunted growth, and reduced yields. Leaves may turn pale green to yellow."},
			"phosphorus": {"{fact} Phosphorus deficiency causes purplish discoloration of leaves, delayed maturity, poor root development, and reduced flowering."},
			"potassium":  {"{fact} Potassium deficiency shows as browning of leaf edges, weak stems, increased disease susceptibility, and poor fruit quality."},
		},
		IntentGeneral: {
			"nitrogen":   {"{fact} It's the most important nutrient for plant growth and is often the most limiting nutrient in crop production."},
			"phosphorus": {"{fact} It's crucial for energy transfer in plants and is especially important during early growth stages."},
			"potassium":  {"{fact} It helps plants resist drought, diseases, and improves overall crop quality."},
		},
	},
	generic: map[Intent][]string{
		IntentTiming:     {"{fact} Apply {name} according to crop growth stage, with most going on at or before planting. Split applications improve efficiency."},
		IntentQuantity:   {"{fact} {name} rates depend on soil test results and the crop being grown. Follow local extension recommendations for your field."},
		IntentDeficiency: {"{fact} A shortage of {name} usually shows as poor growth and leaf discoloration. Confirm with soil and plant tissue tests before correcting."},
		IntentGeneral:    {"{fact} Manage {name} carefully based on soil tests, crop needs and growth stage for the best results."},
	},
}

var fertilizerTopicTemplates = map[Intent][]string{
	IntentOrganic: {
		"Organic fertilizers like compost, manure and bone meal improve soil health and provide slow-release nutrients. They enhance soil structure and microbial activity.",
		"Natural fertilizers such as vermicompost, green manure and cover crops add nutrients while building soil organic matter over time.",
		"Organic nutrient sources release slowly as soil organisms break them down. Combine compost with legumes in the rotation to supply nitrogen naturally.",
	},
	IntentChemical: {
		"Chemical fertilizers provide nutrients in readily available forms. Use them based on soil tests and apply at the right time for maximum efficiency.",
		"Synthetic fertilizers act quickly and allow precise rates. Match the product and rate to soil test results, and split nitrogen to limit losses.",
		"Mineral fertilizers are concentrated and fast-acting. Calibrate spreaders, follow label rates and avoid applying before heavy rain.",
	},
	IntentSoilTest: {
		"Soil testing is essential before applying fertilizers. Test for pH, NPK levels and micronutrients every 2-3 years to determine exact fertilizer needs.",
		"A soil test shows what your field actually needs. Sample several spots at consistent depth, mix them, and send the sample to an accredited lab.",
		"Test soil before the season starts so results arrive in time to plan. Track results over the years to see how your nutrient program is working.",
	},
	IntentExcess: {
		"Over-fertilization can burn plants, pollute water sources and waste money. Follow recommended rates and use slow-release fertilizers when possible.",
		"Too much fertilizer causes salt buildup, leaf burn and nutrient runoff. Flush affected soil with water and skip the next application.",
		"Excess nitrogen leads to lush growth that attracts pests and delays maturity. Apply only what soil tests and crop needs justify.",
	},
	IntentGeneral: {
		"Fertilizer selection should be based on soil test results, crop requirements and growth stage. Balanced nutrition is key for healthy plants and good yields.",
		"Good nutrient management uses the right source at the right rate, right time and right place. Start with a soil test.",
		"Plants need nitrogen, phosphorus and potassium in the largest amounts, plus secondary nutrients and micronutrients. Apply them in balance with crop demand.",
	},
}
