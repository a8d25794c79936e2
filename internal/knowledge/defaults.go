package knowledge

// DefaultData returns the built-in knowledge the service ships with.
func DefaultData() Data {
	return Data{
		Crops: map[string]string{
			"rice":      "Rice requires plenty of water and grows best in warm, humid climates. Plant in flooded fields and ensure proper drainage to prevent diseases.",
			"wheat":     "Wheat thrives in temperate climates with well-drained soil. Plant in fall for winter wheat or spring for summer varieties.",
			"maize":     "Maize needs full sun and fertile soil. Plant after last frost and ensure consistent watering during pollination.",
			"mirchi":    "Chili peppers thrive in warm climates with full sun. Plant after last frost, keep soil moist but not waterlogged. Provide support for fruiting plants.",
			"cotton":    "Cotton grows best in warm, sunny climates with well-drained soil. Plant seeds directly after last frost. Requires consistent moisture during boll development.",
			"groundnut": "Groundnuts (peanuts) prefer sandy, well-drained soil and warm temperatures. Plant seeds 2-3 inches deep after soil warms. Requires 120-150 frost-free days.",
			"barley":    "Barley is a cool-season grain that tolerates poor soil conditions. Plant in early spring or fall. Grows well in temperate climates with moderate rainfall.",
			"oats":      "Oats are hardy cool-season crops that grow quickly. Plant in early spring or fall. Tolerates poor soil and cooler temperatures better than other grains.",
		},
		Pests: map[string]string{
			"aphids":       "Aphids can be controlled with neem oil spray or introducing ladybugs. Remove affected leaves and avoid over-fertilizing.",
			"caterpillars": "Use Bacillus thuringiensis (BT) spray for organic control. Hand-pick large caterpillars and use row covers as prevention.",
			"mites":        "Spider mites thrive in dry conditions. Increase humidity, use insecticidal soap, and avoid broad-spectrum insecticides.",
			"beetles":      "Beetles can be hand-picked or treated with pyrethrin-based insecticides. Use traps and remove plant debris.",
			"worms":        "Cutworms and other worms can be controlled by removing debris and using collars around young plants.",
			"flies":        "Fruit flies can be trapped with vinegar solutions or controlled with parasitic wasps. Keep area clean.",
			"bugs":         "Plant bugs and stink bugs pierce stems and fruit to feed on sap, leaving spotted or deformed growth. Remove weeds that shelter them and hand-pick adults early in the day.",
			"insects":      "Most insect pests are either chewers that leave holes and ragged edges or sap-suckers that cause yellowing and curling. Identify the feeding type before choosing a control.",
		},
		Nutrients: map[string]string{
			"nitrogen":   "Nitrogen promotes leaf growth. Use urea or ammonium nitrate. Apply in split doses to avoid leaching.",
			"phosphorus": "Phosphorus aids root development. Use bone meal or superphosphate. Apply at planting time.",
			"potassium":  "Potassium improves disease resistance. Use potash or compost. Apply during fruit development.",
			"npk":        "Balanced fertilizers provide N-P-K in proper ratios. Choose based on crop needs and soil test results.",
		},

		CropMentions:     []string{"rice", "wheat", "maize", "corn", "mirchi", "chili", "cotton", "groundnut", "peanut", "barley", "oats"},
		PestMentions:     []string{"aphid", "caterpillar", "mite", "beetle", "worm", "fly", "bug", "insect"},
		NutrientMentions: []string{"nitrogen", "phosphorus", "phosphate", "potassium", "npk", "balanced"},

		CropAliases: map[string]string{
			"corn":   "maize",
			"chili":  "mirchi",
			"peanut": "groundnut",
		},
		PestAliases: map[string]string{
			"fly": "flies",
		},
		NutrientAliases: map[string]string{
			"phosphate": "phosphorus",
			"balanced":  "npk",
		},
	}
}

// Default returns the built-in knowledge base.
func Default() *Base {
	b, err := New(DefaultData())
	if err != nil {
		panic("knowledge: built-in data is invalid: " + err.Error())
	}
	return b
}
