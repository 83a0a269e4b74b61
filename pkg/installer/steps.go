package installer

import "github.com/Aricalhe/podbundle/pkg/types"

// Step names, in the order the installation pass runs them.
const (
	StepAddTarget                   = "AddTarget"
	StepCreateSupportDir            = "CreateSupportDir"
	StepCreateSupportGroup          = "CreateSupportGroup"
	StepCreateXCConfig              = "CreateXCConfig"
	StepCreateInfoPlist             = "CreateInfoPlist"
	StepCreateModuleMap             = "CreateModuleMap"
	StepCreateUmbrellaHeader        = "CreateUmbrellaHeader"
	StepCreateEmbedFrameworksScript = "CreateEmbedFrameworksScript"
	StepCreateBridgeSupport         = "CreateBridgeSupport"
	StepCreateCopyResourcesScript   = "CreateCopyResourcesScript"
	StepCreateAcknowledgements      = "CreateAcknowledgements"
	StepCreateDummySource           = "CreateDummySource"
)

// stepSpec pairs a step name with the flag conditions deciding whether
// the pass runs it.
type stepSpec struct {
	name string
	when func(target *types.AggregateTarget, opts Options) bool
	run  func(i *Installer, p *pass) error
}

// stepTable is the decision table for one installation pass. It is
// evaluated once at the start of a pass, so the step sequence for any
// (target, options) pair is inspectable without executing anything.
//
// Ordering is load-bearing in one place: bridge support must be
// generated before the copy-resources script, because the
// bridge-support artifact path feeds the resource aggregation of
// every configuration.
var stepTable = []stepSpec{
	{StepAddTarget, always, (*Installer).addTarget},
	{StepCreateSupportDir, always, (*Installer).createSupportDir},
	{StepCreateSupportGroup, always, (*Installer).createSupportGroup},
	{StepCreateXCConfig, always, (*Installer).createXCConfig},
	{StepCreateInfoPlist, whenFrameworks, (*Installer).createInfoPlist},
	{StepCreateModuleMap, whenFrameworks, (*Installer).createModuleMap},
	{StepCreateUmbrellaHeader, whenFrameworks, (*Installer).createUmbrellaHeader},
	// Embedding a framework inside an already-embedded target is
	// invalid, so host-dependent targets skip this step entirely;
	// framework aggregation never runs for them.
	{StepCreateEmbedFrameworksScript, unlessHostTarget, (*Installer).createEmbedFrameworksScript},
	{StepCreateBridgeSupport, whenBridgeSupport, (*Installer).createBridgeSupport},
	{StepCreateCopyResourcesScript, always, (*Installer).createCopyResourcesScript},
	{StepCreateAcknowledgements, always, (*Installer).createAcknowledgements},
	{StepCreateDummySource, always, (*Installer).createDummySource},
}

func always(*types.AggregateTarget, Options) bool {
	return true
}

func whenFrameworks(target *types.AggregateTarget, _ Options) bool {
	return target.RequiresFrameworks
}

func unlessHostTarget(target *types.AggregateTarget, _ Options) bool {
	return !target.RequiresHostTarget
}

func whenBridgeSupport(_ *types.AggregateTarget, opts Options) bool {
	return opts.BridgeSupport
}

// PlanSteps returns the names of the steps an installation pass would
// run for the given target and options, in execution order.
func PlanSteps(target *types.AggregateTarget, opts Options) []string {
	names := make([]string, 0, len(stepTable))
	for _, spec := range stepTable {
		if spec.when(target, opts) {
			names = append(names, spec.name)
		}
	}
	return names
}
