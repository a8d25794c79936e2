package engine

var pestTable = templateTable{
	specific: map[Intent]map[string][]string{
		IntentControl: {
			"aphids": {
				"{fact} Spray with neem oil solution (1-2 tablespoons per gallon of water) every 7-10 days. Introduce ladybugs as natural predators. Avoid over-fertilizing with nitrogen which attracts aphids.",
				"Aphid control: {fact} Use a strong stream of water to knock aphids off plants. Apply insecticidal soap spray, focusing on undersides of leaves. Repeat treatments every 3-5 days as needed.",
				"{fact} For aphid management, prune heavily infested plant parts. Apply systemic insecticides if infestation is severe, but prefer biological controls like parasitic wasps for long-term control.",
				"{fact} Aphid treatment: Apply horticultural oils early in the morning, ensure good air circulation around plants, and use reflective mulches to deter landing. Monitor for natural enemies like lacewings.",
				"{fact} Managing aphids organically: Use companion planting with herbs like mint and catnip, apply diatomaceous earth around plant bases, and maintain proper plant spacing to improve air flow.",
			},
			"caterpillars": {
				"{fact} Apply Bacillus thuringiensis (BT) spray in the evening when caterpillars are actively feeding. Hand-pick large caterpillars and destroy egg masses. Use row covers for prevention.",
				"Caterpillar control: {fact} BT is the most effective organic control. Mix according to package directions and apply to both sides of leaves. Reapply after rain or every 5-7 days during infestation.",
				"{fact} For caterpillar management, monitor plants daily and remove eggs/young larvae. Use spinosad-based insecticides as an alternative to BT. Practice crop rotation to reduce populations.",
				"{fact} Caterpillar treatment: Use parasitic wasps for biological control, apply neem oil spray every 7-10 days, and hand-pick egg masses from undersides of leaves. Avoid broad-spectrum insecticides that kill beneficial insects.",
				"{fact} Managing caterpillars: Scout plants regularly for eggs and young larvae, use floating row covers during vulnerable stages, and apply diatomaceous earth around plant bases as a barrier.",
			},
			"mites": {
				"{fact} Increase humidity around plants and spray with insecticidal soap. Apply neem oil solution weekly. Avoid broad-spectrum insecticides that kill beneficial mites.",
				"Spider mite control: {fact} Mist plants regularly to increase humidity. Use predatory mites as biological control. Apply horticultural oil sprays in cooler temperatures.",
				"{fact} For mite management, isolate infested plants to prevent spread. Use sulfur-based sprays carefully as they can burn plants. Improve air circulation to reduce humidity that mites prefer.",
				"{fact} Mite treatment: Use insecticidal soap sprays every 3-5 days, ensure proper ventilation, and introduce predatory mites for long-term control. Avoid overhead watering that increases humidity.",
				"{fact} Managing spider mites: Apply horticultural oils in the evening, maintain consistent humidity levels, and use reflective mulches to deter mites. Monitor for webbing on plant undersides.",
			},
			"beetles": {
				"{fact} Hand-pick beetles and drop them in soapy water. Use pyrethrin-based insecticides for larger infestations. Place traps with attractants to monitor populations.",
				"Beetle control: {fact} Remove plant debris where beetles overwinter. Apply diatomaceous earth around plant bases. Use beneficial nematodes in soil for larvae.",
				"{fact} For beetle management, use floating row covers during vulnerable growth stages. Apply systemic insecticides if damage is severe. Encourage beneficial insects that prey on beetles.",
				"{fact} Beetle treatment: Apply neem oil spray every 7-10 days, use sticky traps to monitor populations, and hand-pick adults during evening hours. Avoid broad-spectrum insecticides.",
				"{fact} Managing beetles: Scout regularly for adults and larvae, use row covers for young plants, and apply diatomaceous earth as a barrier. Maintain proper plant spacing for air circulation.",
			},
			"worms": {
				"{fact} Place cardboard collars around young plants to prevent cutworm entry. Apply beneficial nematodes to soil. Hand-pick worms at night when they feed.",
				"Cutworm control: {fact} Till soil in fall to expose overwintering worms. Use parasitic wasps for biological control. Apply diatomaceous earth around stems.",
				"{fact} For worm management, avoid planting susceptible crops after sod. Use raised beds to make it harder for worms to reach plants. Apply BT if needed for surface-feeding worms.",
				"{fact} Worm treatment: Apply neem oil spray every 7-10 days, use beneficial nematodes in soil, and hand-pick large worms during evening hours. Avoid broad-spectrum insecticides.",
				"{fact} Managing worms: Scout regularly for cut marks on stems, use row covers for young plants, and apply diatomaceous earth as a barrier. Maintain proper plant spacing for air circulation.",
			},
			"flies": {
				"{fact} Use yellow sticky traps to monitor and reduce adult populations. Keep area clean of decaying matter. Apply spinosad-based insecticides if populations are high.",
				"Fruit fly control: {fact} Trap adults with vinegar solutions in jars. Remove overripe or damaged fruits immediately. Use parasitic wasps for biological control.",
				"{fact} For fly management, sanitize tools and containers. Use row covers to exclude adults. Apply pyrethrin sprays to plants, avoiding fruit.",
				"{fact} Fly treatment: Apply neem oil spray every 7-10 days, use vinegar traps to monitor populations, and hand-pick adults during evening hours. Avoid broad-spectrum insecticides.",
				"{fact} Managing flies: Scout regularly for adult flies, use row covers for young plants, and apply diatomaceous earth as a barrier. Maintain proper plant spacing for air circulation.",
			},
		},
		IntentPrevent: {
			"aphids":       {"Prevent aphids by avoiding excessive nitrogen fertilization, maintaining plant health, and regularly inspecting plants. Plant garlic or onions nearby as natural repellents."},
			"caterpillars": {"Prevent caterpillars by using row covers during vulnerable stages, practicing crop rotation, and removing plant debris. Plant trap crops like radishes to attract egg-laying."},
			"mites":        {"Prevent spider mites by maintaining adequate humidity, avoiding drought stress, and not over-fertilizing. Regularly wash plants to remove dust that mites use for webbing."},
			"beetles":      {"Prevent beetles by removing overwintering sites, using trap crops, and maintaining field sanitation. Plant resistant varieties when available."},
			"worms":        {"Prevent cutworms by tilling soil in fall, using collars around transplants, and avoiding planting after grass or weeds. Use raised beds to deter worms."},
			"flies":        {"Prevent fruit flies by harvesting fruits promptly, cleaning up fallen fruits, and using row covers. Maintain proper plant spacing for air circulation."},
		},
	},
	// Used for pests added through a knowledge file.
	generic: map[Intent][]string{
		IntentControl: {
			"{fact} To control {name}, identify the species accurately, use cultural and biological controls first, and apply targeted treatments when populations exceed thresholds.",
			"{fact} {name} management starts with monitoring. Remove heavily infested plant parts, encourage natural enemies and use selective products only when needed.",
		},
		IntentPrevent: {
			"{fact} Prevent {name} with crop rotation, field sanitation, resistant varieties and regular scouting so problems are caught early.",
		},
		IntentGeneral: {
			"{fact} This pest can cause significant damage if not controlled. Monitor regularly and use integrated pest management approaches combining cultural, biological, and chemical methods as needed.",
		},
	},
}

var pestTopicTemplates = map[Intent][]string{
	IntentControl: {
		"Effective pest control starts with identification. Examine damaged plants for pests, eggs, or damage patterns. Use integrated pest management: prevention first, then biological and chemical controls.",
		"For pest management, begin with cultural controls like crop rotation and proper spacing. Monitor regularly with traps and scouting. Apply controls only when pest populations exceed economic thresholds.",
		"Pest control strategy: 1) Identify the pest accurately, 2) Determine if treatment is needed, 3) Choose least toxic method first, 4) Apply at proper timing, 5) Monitor effectiveness.",
	},
	IntentOrganic: {
		"Organic pest control focuses on natural methods: neem oil, insecticidal soap, diatomaceous earth, beneficial insects, and cultural practices. These methods are safer for beneficial insects and the environment.",
		"Natural pest control options include: introducing ladybugs for aphids, using BT for caterpillars, applying horticultural oils for mites, and using row covers for exclusion. Always follow organic certification guidelines.",
		"For organic pest management, prioritize prevention through biodiversity, use botanical insecticides like pyrethrin and neem, and employ biological controls like predatory insects and nematodes.",
	},
	IntentPrevent: {
		"Prevent pest problems by maintaining plant health, using resistant varieties, practicing crop rotation, and keeping fields clean. Regular monitoring helps catch issues before they become serious.",
		"Pest prevention strategies include: proper plant spacing for air circulation, avoiding over-fertilization, using trap crops, maintaining beneficial insect habitats, and timely harvesting.",
		"To avoid pest infestations, focus on field sanitation, crop rotation, resistant varieties, proper irrigation to avoid stress, and regular scouting. Healthy plants are less susceptible to pests.",
	},
	IntentIdentify: {
		"Identify pests by examining plant symptoms: holes in leaves suggest chewing insects, discoloration indicates sucking pests, wilting may mean root feeders. Use field guides or send samples to extension services.",
		"Pest identification involves looking at damage patterns, searching for actual pests/eggs, and considering environmental conditions. Digital plant diagnosis apps can help with identification.",
		"To identify pests, inspect plants thoroughly including undersides of leaves, soil around roots, and stems. Note the type of damage and when it occurs. Compare with pest identification guides.",
	},
	IntentGeneral: {
		"For pest-related questions, please specify the type of pest or describe the symptoms you're seeing. Common agricultural pests include aphids, caterpillars, mites, beetles, and various worms.",
		"Pest management depends on the specific pest and crop. Describe the pest or damage symptoms for targeted advice. Integrated pest management combines prevention, monitoring, and control methods.",
		"Different pests require different control strategies. Please provide details about the pest (aphids, caterpillars, mites, etc.) or the type of damage you're observing for specific recommendations.",
	},
}

var pestTips = []string{
	" Regular monitoring is key to early detection.",
	" Maintain plant health to reduce susceptibility.",
	" Use beneficial insects for natural control.",
	" Practice crop rotation to break pest cycles.",
}
