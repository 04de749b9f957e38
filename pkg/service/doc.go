// Package service is the classification entry point shared by the ped
// command line, the interactive shell and library callers.
//
// A Service parses raw request fields, classifies the operating point
// through a rule registry, optionally renders the rule's chart, and reports
// every outcome to the operational logger, the trace log and the metrics
// recorder:
//
//	svc, err := service.New(service.Config{
//	    Registry: rules.NewDefaultRegistry(),
//	    Renderer: chart.NewSVGRenderer(chart.DefaultOptions()),
//	})
//	out, err := svc.Classify(ctx, service.Request{
//	    FluidState: "gas", FluidGroup: 1, PS: 80, DN: 90,
//	    ChartPath: "piping_group1_gas.svg",
//	})
//	fmt.Println(out.Result.Category) // III
//
// Rejected input never reaches a rule or the renderer.
package service
