package knowledge

// builtinTopics returns the fixed topic set. Precedence order is significant:
// "drug_target" precedes topics with broader keywords, and specific phrases
// ("docking score") are listed on the topic they should select.
func builtinTopics() []Topic {
	return []Topic{
		{
			Key:      "lipinski",
			Title:    "Lipinski's Rule of 5",
			Keywords: []string{"lipinski", "rule of 5", "rule of five", "ro5"},
			Text: `Lipinski's Rule of 5 is a set of guidelines to evaluate drug-likeness:
1. Molecular weight < 500 Da
2. LogP (lipophilicity) < 5
3. Hydrogen bond donors <= 5
4. Hydrogen bond acceptors <= 10

These rules help predict oral bioavailability of drug candidates.`,
		},
		{
			Key:      "admet",
			Title:    "ADMET properties",
			Keywords: []string{"admet", "absorption", "distribution", "metabolism", "excretion", "toxicity"},
			Text: `ADMET stands for:
- Absorption: how the drug enters the bloodstream
- Distribution: how the drug spreads throughout the body
- Metabolism: how the drug is broken down
- Excretion: how the drug is eliminated from the body
- Toxicity: harmful effects of the drug

ADMET studies are crucial for drug development to ensure safety and efficacy.`,
		},
		{
			Key:      "docking",
			Title:    "Molecular Docking",
			Keywords: []string{"docking", "binding score", "docking score"},
			Text: `Molecular docking is a computational technique used to predict:
- How small molecules (ligands) bind to proteins (targets)
- Binding affinity and orientation
- Key interactions between ligand and protein

Docking scores (typically negative values) indicate binding strength - lower scores mean stronger binding.`,
		},
		{
			Key:      "virtual_screening",
			Title:    "Virtual Screening",
			Keywords: []string{"virtual screening", "computational screening"},
			Text: `Virtual screening is a computational approach to:
- Screen large libraries of compounds
- Identify potential drug candidates
- Reduce time and cost of drug discovery
- Prioritize compounds for experimental testing

It combines various techniques including docking, ADMET prediction, and machine learning.`,
		},
		{
			Key:      "pharmacophore",
			Title:    "Pharmacophore modeling",
			Keywords: []string{"pharmacophore"},
			Text: `A pharmacophore is the ensemble of steric and electronic features necessary for:
- Optimal molecular recognition by a biological target
- Triggering or blocking a biological response

It includes features like hydrogen bond donors/acceptors, aromatic rings and hydrophobic regions.`,
		},
		{
			Key:      "qsar",
			Title:    "QSAR",
			Keywords: []string{"qsar", "structure activity", "structure-activity"},
			Text: `QSAR (Quantitative Structure-Activity Relationship) models:
- Correlate chemical structure with biological activity
- Predict activity of new compounds
- Guide lead optimization
- Use molecular descriptors and machine learning`,
		},
		{
			Key:      "lead_optimization",
			Title:    "Lead Optimization",
			Keywords: []string{"lead optimization", "lead optimisation"},
			Text: `Lead optimization involves:
- Improving potency and selectivity
- Enhancing ADMET properties
- Reducing toxicity
- Maintaining drug-like properties
- Structure-Activity Relationship (SAR) studies`,
		},
		{
			Key:      "high_throughput_screening",
			Title:    "High-Throughput Screening",
			Keywords: []string{"hts", "high throughput", "high-throughput"},
			Text: `High-Throughput Screening (HTS):
- Automated testing of thousands to millions of compounds
- Identifies active compounds (hits)
- Uses robotics and data processing
- Complementary to virtual screening`,
		},
		{
			Key:      "drug_target",
			Title:    "Drug Targets",
			Keywords: []string{"drug target", "target", "protein target"},
			Text: `Drug targets are biological molecules that drugs interact with:
- Proteins (enzymes, receptors, ion channels)
- Nucleic acids (DNA, RNA)
- Carbohydrates
- Lipids

Most drugs target proteins, especially G-protein coupled receptors (GPCRs) and kinases.`,
		},
		{
			Key:      "bioavailability",
			Title:    "Bioavailability",
			Keywords: []string{"bioavailability", "bioavailable"},
			Text: `Bioavailability is the fraction of an administered drug that reaches systemic circulation:
- Affected by absorption and first-pass metabolism
- Oral bioavailability is often < 100%
- IV administration equals 100% bioavailability
- Critical for drug dosing`,
		},
	}
}
