// Command ped classifies piping under the Pressure Equipment Directive
// (2014/68/EU, Annex II Tables 6-9) and draws the classification chart.
//
// Usage:
//
//	ped <command> [flags]
//
// Commands:
//
//	classify  Classify one operating point
//	example   Run the worked example (PS=80 bar, DN=90 mm, gas, group 1)
//	rules     List the classification rules and their boundaries
//	shell     Start an interactive classification shell
//	trace     Inspect a trace log (view, stats, export)
//	config    Manage the configuration file
//
// Examples:
//
//	# Classify and draw the chart
//	ped classify --state gas --group 1 --ps 80 --dn 90 --chart out.svg
//
//	# Machine-readable output
//	ped classify --state liquid --group 2 --ps 600 --dn 300 --format json
//
//	# Record every run and summarize later
//	ped --trace runs.plog classify --state gas --group 2 --ps 10 --dn 100
//	ped trace stats runs.plog
//
// Exit codes: 0 success, 1 command error, 2 invalid input.
package main

import (
	"os"

	"github.com/ped-tools/ped-go/cmd/ped/commands"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
