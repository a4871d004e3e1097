package share

// degradeStep is one rung of the lossy-degradation ladder applied when an
// encoded URL exceeds the configured ceiling. Steps are cumulative: each
// apply runs on the wire form already reduced by every earlier step.
type degradeStep struct {
	message string
	apply   func(*wireBuild)
}

// degradeSteps is ordered from least to most destructive. The encoder walks
// it top to bottom and stops at the first step that brings the URL under
// the ceiling, reporting that step's message.
var degradeSteps = []degradeStep{
	{message: "variant names removed", apply: dropVariantNames},
	{message: "variants removed beyond first two bars", apply: dropVariantsAfterTwoBars},
	{message: "all variants removed", apply: dropAllVariants},
	{message: "equipment removed", apply: dropEquipment},
	{message: "character names removed", apply: dropBarNames},
}

// lastResortMessage is reported when even the full ladder cannot fit the
// build, and the bar list itself is cut down.
const lastResortMessage = "build truncated to first 4 bars"

func dropVariantNames(w *wireBuild) {
	for _, bar := range w.Bars {
		for _, v := range bar.Variants {
			v.Name = ""
		}
	}
}

func dropVariantsAfterTwoBars(w *wireBuild) {
	for i, bar := range w.Bars {
		if i >= 2 {
			bar.Variants = nil
		}
	}
}

func dropAllVariants(w *wireBuild) {
	for _, bar := range w.Bars {
		bar.Variants = nil
	}
}

func dropEquipment(w *wireBuild) {
	for _, bar := range w.Bars {
		bar.Equipment = nil
		for _, v := range bar.Variants {
			v.Equipment = nil
		}
	}
}

func dropBarNames(w *wireBuild) {
	for _, bar := range w.Bars {
		bar.Name = ""
	}
}
