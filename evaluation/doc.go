// Package evaluation compares sampled estimates with known betweenness values
// and reads and writes the tab-separated files of an experiment run.
//
// Files:
//
//   - Ground truth:  "Node\tBetweennessCentrality" then one row per vertex.
//   - Result file:   "Total Nodes: N", "Calculation Time (seconds): T", a blank
//     line, then "Node Degree True_BC Approximated_BC ErrorPercentage NumSSP
//     NumSSP/TotalNodes" (tab separated). ErrorPercentage and the SSP ratio are
//     printed with six decimals.
//   - Averages:      "Node\tAverage_Approximated_BC\tTotal/Numssp", one row per
//     target, averaged over repetitions.
//
// Error convention:
//
//   - ErrorPercentage is |true − approx| / true · 100, and exactly 0 whenever
//     the true value is 0, whatever the estimate.
package evaluation
