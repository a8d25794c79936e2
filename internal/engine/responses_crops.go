package engine

var cropTable = templateTable{
	specific: map[Intent]map[string][]string{
		IntentGrow: {
			"rice": {
				"{fact} To grow rice: 1) Prepare flooded fields or use proper irrigation, 2) Transplant seedlings when 3-4 weeks old, 3) Maintain 2-4 inches of water depth, 4) Apply nitrogen fertilizer in 3 splits, 5) Control weeds through water management, 6) Harvest when grains are golden yellow.",
				"{fact} Rice cultivation requires: 1) Flooded field preparation, 2) Seedling transplanting at 21-28 days, 3) Continuous water management (2-4 inches depth), 4) Split nitrogen applications, 5) Integrated weed control, 6) Timely harvest at grain maturity.",
				"{fact} For successful rice farming: 1) Ensure proper land leveling and bunding, 2) Use quality seedlings, 3) Maintain optimal water levels throughout growth, 4) Apply fertilizers in recommended splits, 5) Monitor and control pests and diseases, 6) Harvest when moisture content is appropriate.",
				"{fact} Rice growing steps: 1) Prepare a nursery and raise seedlings, 2) Transplant when seedlings are 25-30 cm tall, 3) Keep fields continuously flooded, 4) Apply nitrogen at basal, tillering and panicle initiation stages, 5) Control weeds with water depth or herbicides, 6) Harvest when 80% of grains are straw-colored.",
				"{fact} Key rice production steps: 1) Select high-yielding varieties suited to your region, 2) Prepare puddled fields, 3) Transplant at 20x10 cm spacing, 4) Maintain standing water, 5) Apply 120 kg nitrogen per hectare in splits, 6) Control stem borers and leaf folders, 7) Harvest at 30-35% grain moisture.",
				"{fact} Rice farming guide: 1) Prepare and puddle the land, 2) Raise seedlings in nursery beds, 3) Transplant in straight rows, 4) Provide continuous irrigation, 5) Fertilize with NPK in a 4:2:1 ratio, 6) Protect from pests using integrated methods, 7) Harvest manually or mechanically when ready.",
			},
			"wheat": {
				"{fact} To grow wheat: 1) Plant in well-drained soil in fall or early spring, 2) Sow seeds 1-2 inches deep at 20-30 lbs/acre, 3) Apply nitrogen fertilizer in split applications, 4) Monitor for rust diseases, 5) Harvest when moisture content is 12-15%.",
				"{fact} Wheat production steps: 1) Select the planting time (fall for winter wheat), 2) Prepare a seedbed with good drainage, 3) Sow at optimal seeding rates, 4) Apply nitrogen in 2-3 splits to prevent lodging, 5) Scout for diseases regularly, 6) Harvest at proper moisture for storage.",
				"{fact} Successful wheat farming involves: 1) Soil testing and preparation, 2) Timely planting in good conditions, 3) Proper seed placement and population, 4) A balanced fertilization program, 5) Disease monitoring and control, 6) Harvest timing based on grain moisture.",
				"{fact} Wheat cultivation steps: 1) Choose winter or spring varieties for your climate, 2) Plant in rows 6-8 inches apart, 3) Apply 100-150 kg nitrogen per hectare, 4) Control aphids and rust with fungicides, 5) Irrigate at crown root initiation and heading, 6) Harvest when grains are hard.",
				"{fact} Growing wheat successfully: 1) Treat clean seed before sowing, 2) Sow at 100-125 kg per hectare, 3) Provide phosphorus and potassium at planting, 4) Split nitrogen applications to avoid lodging, 5) Monitor for Hessian fly and aphids, 6) Combine harvest at 12-14% moisture.",
				"{fact} Wheat farming practices: 1) Prepare a fine seedbed, 2) Plant into good moisture, 3) Use certified seed, 4) Apply zinc and boron if deficient, 5) Control weeds with post-emergence herbicides, 6) Protect from birds during ripening, 7) Store grain properly after harvest.",
			},
			"maize": {
				"{fact} To grow maize: 1) Plant after last frost when soil is warm (60°F+), 2) Sow seeds 1-2 inches deep, 4-6 seeds per hill, 3) Thin to 1-2 plants per hill after emergence, 4) Apply nitrogen fertilizer in 2-3 splits, 5) Ensure consistent moisture during pollination, 6) Harvest when kernels are dented and black-layered.",
				"{fact} Maize cultivation guide: 1) Wait for soil temperatures above 60°F, 2) Plant seeds at proper depth and spacing, 3) Thin seedlings for the right plant population, 4) Side-dress nitrogen at key growth stages, 5) Maintain soil moisture during critical periods, 6) Harvest at black layer formation.",
				"{fact} For high maize yields: 1) Time planting after frost danger, 2) Ensure good seed-to-soil contact, 3) Manage plant spacing for light interception, 4) Apply nitrogen at V6 and V12 stages, 5) Irrigate during tasseling and silking, 6) Monitor kernel development for harvest timing.",
				"{fact} Corn production steps: 1) Plant 60,000-70,000 plants per hectare, 2) Apply 150-200 kg nitrogen, 3) Control weeds early, 4) Protect from corn borers with Bt varieties, 5) Irrigate at tasseling and silking, 6) Harvest at 20-25% moisture for drying.",
				"{fact} Successful maize farming: 1) Use hybrid seed with good yield potential, 2) Plant in well-prepared soil, 3) Apply phosphorus and potassium at planting, 4) Side-dress nitrogen at the knee-high stage, 5) Scout for European corn borer, 6) Harvest when kernels have a black layer.",
				"{fact} Maize growing techniques: 1) Sow at 4-5 cm depth, 2) Maintain plant population density, 3) Apply micronutrients if needed, 4) Rotate crops to break pest cycles, 5) Combine harvest at 22-28% grain moisture, 6) Dry to 14% for storage.",
				"{fact} Maize production essentials: 1) Select drought-tolerant varieties for dry areas, 2) Plant in blocks rather than single rows for better pollination, 3) Apply nitrogen in 3 splits to maximize grain fill, 4) Monitor for armyworms during early growth, 5) Use conservation tillage to preserve soil moisture.",
				"{fact} Growing maize successfully: 1) Test soil for pH and nutrients, 2) Use precision planters for uniform spacing, 3) Apply starter fertilizer at planting, 4) Side-dress nitrogen at the V8 stage, 5) Protect ears from birds and rodents, 6) Harvest when kernels reach 30% moisture and dry for storage.",
			},
			"cotton": {
				"{fact} To grow cotton: 1) Plant seeds directly after last frost, 2) Sow 3-4 seeds per foot in rows 30-40 inches apart, 3) Thin to 1 plant per foot, 4) Apply balanced fertilizer at planting, 5) Irrigate regularly during boll development, 6) Harvest when bolls are open and white.",
				"{fact} Cotton production requires: 1) Warm soil for germination, 2) Precise planting depth and spacing, 3) Early season weed control, 4) Balanced nutrient management, 5) Consistent irrigation during fruiting, 6) Multiple pickings as bolls open.",
				"{fact} Successful cotton farming: 1) Plant in well-prepared beds after the soil warms, 2) Maintain proper plant population, 3) Apply starter fertilizer, 4) Control insects throughout the season, 5) Irrigate to prevent stress during boll fill, 6) Harvest efficiently with mechanical pickers.",
				"{fact} Cotton cultivation steps: 1) Select Bt varieties for bollworm control, 2) Plant when soil reaches 65°F, 3) Apply nitrogen in splits, 4) Control weeds with pre-emergence herbicides, 5) Monitor for aphids and whiteflies, 6) Pick bolls when 60-70% are open.",
				"{fact} Growing cotton effectively: 1) Use raised beds for better drainage, 2) Plant 8-10 seeds per meter, 3) Thin to 5-6 plants per meter, 4) Apply potassium during boll development, 5) Protect from pink bollworm, 6) Harvest several times for maximum yield.",
				"{fact} Cotton farming practices: 1) Prepare soil with deep tillage, 2) Treat seeds with fungicide, 3) Keep soil moist during germination, 4) Use drip irrigation for water efficiency, 5) Apply micronutrients as a foliar spray, 6) Store lint at proper humidity.",
			},
			"groundnut": {
				"{fact} To grow groundnuts: 1) Plant seeds 1-2 inches deep after soil warms to 65°F, 2) Space plants 6-8 inches apart in rows 24-30 inches apart, 3) Apply phosphorus fertilizer at planting, 4) Keep soil moist but not waterlogged, 5) Hill soil around plants as pegs develop, 6) Harvest when leaves yellow (100-120 days).",
				"{fact} Peanut cultivation steps: 1) Wait for soil to reach 65°F, 2) Plant seeds at proper depth and spacing, 3) Apply phosphorus and calcium at planting, 4) Maintain even soil moisture, 5) Keep the soil loose for pegging, 6) Harvest when pods are mature.",
				"{fact} For quality peanut production: 1) Ensure warm soil conditions, 2) Use inoculated seed for nitrogen fixation, 3) Apply gypsum for calcium, 4) Monitor for disease pressure, 5) Allow proper curing time, 6) Harvest at the right moisture content.",
				"{fact} Groundnut farming steps: 1) Plant in sandy loam soil, 2) Apply gypsum at the pegging stage, 3) Control leaf spots with fungicides, 4) Avoid water stress during pod development, 5) Harvest when 70-80% of pods are mature, 6) Cure pods in windrows before storage.",
				"{fact} Successful peanut cultivation: 1) Select disease-resistant varieties, 2) Plant at 30 cm row spacing, 3) Apply lime if soil is acidic, 4) Irrigate at critical stages, 5) Protect from aphids and jassids, 6) Dig plants when leaves turn yellow.",
				"{fact} Peanut production guide: 1) Prepare well-drained fields, 2) Treat seeds with rhizobium culture, 3) Plant 2 seeds per hill, 4) Apply 50 kg phosphorus per hectare, 5) Hill soil around plants, 6) Harvest 120-140 days after planting, 7) Dry pods to 8-10% moisture.",
			},
		},
		IntentWater: {
			"rice":   {"{fact} Rice requires continuous flooding: maintain 2-4 inches of water depth throughout the growing season. Keep fields flooded from transplanting until 1-2 weeks before harvest. Water management is critical for weed control and nutrient availability."},
			"wheat":  {"{fact} Wheat needs about 15-20 inches of water in total. Irrigate when soil moisture drops to 50% of field capacity. Avoid irrigation during grain filling to prevent disease. Critical watering periods are the jointing and heading stages."},
			"maize":  {"{fact} Maize requires 20-30 inches of water. It is most critical during tasseling and silking (2 weeks before and after pollination). Water deeply but infrequently to encourage deep roots, and monitor soil moisture regularly."},
			"cotton": {"{fact} Cotton needs 20-30 inches of water. Irrigate every 7-10 days during boll development and avoid water stress during flowering and boll formation. Drip irrigation keeps soil moisture consistent."},
		},
		IntentFertilizer: {
			"rice":   {"{fact} Rice fertilization: apply 100-120 lbs nitrogen/acre in 3 splits (1/3 at planting, 1/3 at tillering, 1/3 at panicle initiation). Use 40-60 lbs phosphorus/acre at planting and keep fields flooded for nutrient availability."},
			"wheat":  {"{fact} Wheat fertilization: apply 80-120 lbs nitrogen/acre in 2-3 splits. Use 30-50 lbs phosphorus/acre at planting and apply potassium based on soil tests. Split nitrogen applications prevent lodging."},
			"maize":  {"{fact} Maize fertilization: apply 150-200 lbs nitrogen/acre in 2-3 splits. Use 60-80 lbs phosphorus/acre at planting, apply potassium based on soil tests, and side-dress nitrogen at the 4-6 leaf stage."},
			"cotton": {"{fact} Cotton fertilization: apply 60-100 lbs nitrogen/acre in splits. Use 40-60 lbs phosphorus/acre at planting and apply potassium during boll development. Soil test to determine exact rates."},
		},
		IntentPest: {
			"rice":   {"{fact} Common rice pests are stem borers, leaf folders and brown planthoppers. Control them with neem oil, beneficial insects and resistant varieties. For diseases such as blast and sheath blight, use fungicides preventively and keep fields clean."},
			"wheat":  {"{fact} Wheat pests include aphids and Hessian fly; diseases include rust, powdery mildew and scab. Use resistant varieties, rotate crops and apply fungicide at flag leaf emergence. Monitor regularly for early detection."},
			"maize":  {"{fact} Maize pests include corn borers, aphids and corn earworms; diseases include gray leaf spot and northern corn leaf blight. Use Bt varieties for insect control and fungicides for disease prevention. Scout fields weekly."},
			"cotton": {"{fact} Cotton pests include bollworms, aphids and whiteflies; diseases include bacterial blight and verticillium wilt. Combine beneficial insects, resistant varieties and targeted insecticide applications."},
		},
		IntentYield: {
			"rice":   {"{fact} Rice yield optimization: aim for 50-80 bushels/acre through good water management, balanced fertilization, pest control and harvest timing. Harvest when 80-85% of grains are straw-colored."},
			"wheat":  {"{fact} Wheat yield goals are 40-80 bushels/acre depending on variety and conditions. Maximize them with the right planting date, population, nutrition and disease control, and harvest at 12-15% moisture."},
			"maize":  {"{fact} Maize yield potential is 150-250 bushels/acre. Optimize with proper spacing (30,000-40,000 plants/acre), timely nitrogen applications and irrigation during critical growth stages."},
			"cotton": {"{fact} Cotton yield goals are 800-1,200 lbs lint/acre. Maximize them through plant population, irrigation scheduling, insect control and harvesting when bolls are 60% open."},
		},
		IntentTiming: {
			"rice":   {"{fact} Plant rice in spring after last frost when soil temperature reaches 60°F. Transplant seedlings 3-4 weeks after seeding and harvest 100-120 days after planting when grains are mature."},
			"wheat":  {"{fact} Plant winter wheat in fall (September-October) or spring wheat once soil reaches 40°F. Harvest 100-120 days after planting when grain moisture is 12-15%."},
			"maize":  {"{fact} Plant maize 2-3 weeks after last frost when soil temperature is 60°F or more. Harvest sweet corn 60-80 days after planting and field corn after 100-120 days."},
			"cotton": {"{fact} Plant cotton after last frost when soil is warm (65°F or more). Harvest begins 140-180 days after planting when bolls open, and several pickings may be needed."},
		},
	},
	generic: map[Intent][]string{
		IntentGrow: {
			"{fact} To grow {name}: 1) Test soil and prepare the seedbed, 2) Plant at the recommended depth and spacing, 3) Provide adequate water and nutrients, 4) Monitor for pests and diseases, 5) Harvest at the proper maturity stage.",
			"{fact} {name} cultivation fundamentals: 1) Soil preparation and testing, 2) Proper planting technique, 3) Water management throughout growth, 4) Nutrient application based on need, 5) Pest and disease monitoring, 6) Timely harvest.",
			"{fact} Growing {name} successfully requires: 1) Understanding its climate requirements, 2) Good seed selection and planting, 3) Irrigation scheduling, 4) Fertilizer management, 5) Integrated pest management, 6) Harvest in the right conditions.",
			"{fact} {name} farming steps: 1) Choose varieties suited to your region, 2) Prepare soil properly, 3) Plant at the recommended time, 4) Apply fertilizer based on soil tests, 5) Protect from major pests, 6) Harvest when the crop reaches maturity.",
			"{fact} Essential practices for {name}: 1) Prepare the land, 2) Use quality seed, 3) Keep proper plant spacing, 4) Provide adequate irrigation, 5) Monitor nutrient status, 6) Apply pest control measures, 7) Time the harvest correctly.",
			"{fact} {name} production steps: 1) Select high-yielding varieties, 2) Follow the recommended planting density, 3) Apply balanced fertilization, 4) Use integrated pest management, 5) Manage water carefully, 6) Harvest at the best stage for quality.",
		},
		IntentWater:      {"{fact} {name} irrigation: water deeply but infrequently to encourage deep root growth. Monitor soil moisture and adjust for the weather, and avoid overhead watering to prevent fungal diseases."},
		IntentFertilizer: {"{fact} {name} fertilization: apply balanced NPK at planting, supplement nitrogen during growth and potassium during reproductive stages. Soil testing is essential to determine specific needs and prevent over-fertilization."},
		IntentPest:       {"{fact} {name} pest management: use integrated pest management with crop rotation, resistant varieties, beneficial insects and targeted sprays. Monitor regularly and treat only when necessary."},
		IntentYield:      {"{fact} To maximize {name} yield, optimize plant spacing, ensure balanced nutrition, maintain proper irrigation, control pests effectively and harvest at optimal maturity."},
		IntentTiming:     {"{fact} {name} planting time depends on your location and climate. Consider frost dates, soil temperature and season length, and consult your local agricultural extension office for specific timing."},
		IntentGeneral:    {"{fact} {name} is a valuable crop that responds well to careful management. Key success factors are soil preparation, timely irrigation, balanced fertilization and pest monitoring."},
	},
}

var cropFertilizerTable = templateTable{
	specific: map[Intent]map[string][]string{
		IntentRecommend: {
			"rice":   {"{fact} For rice fertilization: apply 100-120 lbs nitrogen/acre in 3 splits (1/3 at planting, 1/3 at tillering, 1/3 at panicle initiation). Use 40-60 lbs phosphorus/acre at planting and keep fields flooded for nutrient availability."},
			"wheat":  {"{fact} For wheat fertilization: apply 80-120 lbs nitrogen/acre in 2-3 splits. Use 30-50 lbs phosphorus/acre at planting and apply potassium based on soil tests. Split nitrogen applications prevent lodging."},
			"maize":  {"{fact} For maize fertilization: apply 150-200 lbs nitrogen/acre in 2-3 splits. Use 60-80 lbs phosphorus/acre at planting, apply potassium based on soil tests, and side-dress nitrogen at the 4-6 leaf stage."},
			"cotton": {"{fact} For cotton fertilization: apply 60-100 lbs nitrogen/acre in splits. Use 40-60 lbs phosphorus/acre at planting and apply potassium during boll development. Soil test to determine exact rates."},
		},
	},
	generic: map[Intent][]string{
		IntentRecommend: {"{fact} {name} fertilization: apply balanced NPK at planting, supplement nitrogen during growth and potassium during reproductive stages. Soil testing is essential to determine specific needs and prevent over-fertilization."},
		IntentGeneral:   {"{fact} {name} responds well to balanced fertilization. Test soil first and apply nutrients based on crop needs and growth stage. Split applications maximize uptake efficiency."},
	},
}

var cropTopicTemplates = map[Intent][]string{
	IntentGrow: {
		"Successful crop cultivation begins with understanding your soil type and climate. Test your soil, choose appropriate varieties, and establish good cultural practices from the start.",
		"Growing crops successfully requires planning: soil testing, variety selection, proper planting techniques, irrigation management, fertilization, and pest control. Start small to learn your conditions.",
		"Crop production fundamentals include soil preparation, seed selection, planting timing, water management, nutrient applications, and harvest timing. Each crop has specific requirements.",
		"The key to successful farming is knowing your local conditions. Start by testing your soil pH and nutrient levels, then select crop varieties that thrive in your climate zone.",
		"Crop cultivation is both an art and a science. Begin with proper land preparation, choose high-quality seeds, implement good irrigation practices, and monitor for pests regularly.",
		"Modern agriculture relies on understanding plant needs. Provide the right balance of water, nutrients, and protection from pests and diseases throughout the growing season.",
		"Successful crop growing depends on site selection, soil preparation, seed quality, and ongoing management. Learn your farm's microclimates and soil variations.",
		"Crop production success comes from attention to detail: proper spacing, adequate nutrition, timely irrigation, and vigilant pest monitoring from planting to harvest.",
		"Growing healthy crops requires understanding plant physiology. Ensure adequate sunlight, soil aeration, balanced nutrition, and protection from environmental stresses.",
	},
	IntentWater: {
		"Effective irrigation depends on soil type, crop stage, and weather. Use soil moisture sensors, water deeply but infrequently, and consider drip systems for efficiency.",
		"Water management is crucial for crop health. Monitor soil moisture, water early in the day to reduce evaporation, and adjust for rainfall and temperature.",
		"Proper watering promotes strong root growth. Check soil moisture regularly, water deeply to encourage roots to grow downward, and avoid frequent shallow watering.",
		"Irrigation timing and amount depend on soil texture and crop water requirements. Sandy soils need frequent watering, clay soils less often. Use mulch to conserve moisture.",
		"Good water management prevents both drought stress and waterlogging. Install rain gauges, use tensiometers to monitor soil moisture, and water during cooler parts of the day.",
		"Root development depends on consistent soil moisture. Water deeply to encourage deep roots, but let the top inch of soil dry between waterings to prevent surface rooting.",
		"Efficient water use involves scheduling irrigation from evapotranspiration rates, soil type, and crop growth stage. Consider deficit irrigation for some crops.",
		"Water conservation is key in modern farming. Use drip irrigation, monitor soil moisture sensors, apply water only when needed, and harvest rainwater where possible.",
		"Proper irrigation prevents crop stress. Water when the top 2-3 inches of soil are dry, avoid overhead watering that promotes disease, and consider fertigation for nutrient delivery.",
	},
	IntentSoil: {
		"Soil health is the foundation of successful farming. Test regularly, maintain organic matter, ensure proper drainage, and amend based on test results.",
		"Good soil preparation involves testing pH and nutrients, adding organic matter, ensuring drainage, and minimizing compaction. Healthy soil produces healthy crops.",
		"Soil management includes regular testing, organic matter additions, pH adjustment, and structure improvement. Different crops have different soil requirements.",
		"Soil fertility determines crop productivity. Regular testing for pH, nutrients, and organic matter helps maintain good growing conditions for your crops.",
		"Healthy soil structure supports root growth and nutrient uptake. Avoid compaction, maintain organic matter levels, and ensure drainage to prevent waterlogging.",
		"Soil pH affects nutrient availability. Most crops prefer slightly acidic to neutral soils. Lime acidic soils and add sulfur to alkaline soils to improve nutrient uptake.",
		"Organic matter improves the soil's water-holding capacity and nutrient retention. Add compost, manure, or cover crops to build soil health over time.",
		"Soil testing is the foundation of good farming. Test every 2-3 years, sample from multiple depths, and amend based on the recommendations.",
		"Practices like no-till farming, cover cropping, and crop rotation maintain soil structure, fertility, and biological activity for long-term productivity.",
	},
	IntentFertilizer: {
		"Fertilization should be based on soil tests. Use balanced ratios, apply at the right times, and consider both conventional and organic sources for good plant nutrition.",
		"Proper nutrient management involves soil testing, understanding crop needs, timing applications correctly, and watching plant response. Over-fertilization harms plants and the environment.",
		"Fertilizer programs should match crop requirements. Test soil first, apply nutrients in available forms, and split applications to maximize uptake efficiency.",
		"Nutrient management is critical for crop health. Soil tests determine needs, crop removal rates guide replacement, and split applications prevent losses.",
		"Fertilizer selection depends on soil test results and crop requirements. Use starter fertilizer at planting, side-dress nitrogen during growth, and apply micronutrients as needed.",
		"Balanced fertilization prevents deficiencies and toxicities. Nitrogen drives growth, phosphorus builds roots, potassium improves stress tolerance, and micronutrients support enzyme function.",
		"Fertilizer timing affects efficiency. Apply phosphorus and potassium at planting, nitrogen in splits through the season, and micronutrients as foliar sprays when needed.",
		"Sustainable nutrient management covers soil testing, application rate, timing, and placement. Consider organic sources and slow-release formulations to reduce environmental impact.",
		"Fertilizer programs should be tailored to each field. Use precision agriculture tools, check plant tissue tests, and adjust applications to yield goals and conditions.",
	},
	IntentPest: {
		"Integrated pest management combines prevention, monitoring, and control. Start with cultural practices, use biological controls, and apply chemicals only when necessary.",
		"Effective pest control begins with prevention through crop rotation, resistant varieties, and field sanitation. Regular scouting and threshold-based treatment are key.",
		"Pest management strategies include cultural controls, biological agents, and chemical applications. Understanding pest life cycles helps time interventions.",
		"IPM approaches prioritize prevention and monitoring. Use resistant varieties, keep fields clean, encourage beneficial insects, and treat only when thresholds are exceeded.",
		"Pest control decisions should rest on scouting and economic thresholds. Identify pests accurately, understand their biology, and choose the least disruptive control.",
		"Biological control uses natural enemies to manage pests. Encourage ladybugs, lacewings, and parasitic wasps through habitat management and reduced pesticide use.",
		"Cultural controls prevent pest problems. Rotate crops, use trap crops, keep proper plant spacing, and time planting to avoid peak pest pressure.",
		"Chemical control should be the last resort. Choose selective pesticides, apply at the proper rate and timing, and follow label instructions carefully.",
		"Pest monitoring means regular field scouting. Use traps, examine plants for damage and pests, and keep records to make informed decisions.",
	},
}

var cropSuggestions = []string{
	" Consider consulting local agricultural extension services for region-specific advice.",
	" Keep detailed records of your farming practices to improve future seasons.",
	" Join local farming communities to learn from experienced growers in your area.",
	" Consider sustainable practices like cover cropping and reduced tillage for long-term soil health.",
}
