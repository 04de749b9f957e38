// Package chart renders PED classification charts.
//
// A chart shows the boundaries of one classification rule on log-log axes
// (DN 1-10000 mm horizontally, PS 0.5-1000 bar vertically) together with the
// classified operating point. The geometry comes from the rule's
// ped.ChartSpec, so the drawn lines are the thresholds the rule applies. The
// category printed next to the point is the one carried by the ped.Result
// passed in.
package chart
