// Package status owns the scheduler/task status code taxonomy.
//
// Ownership boundary:
// - the Code enum and its three ranges (manager, task, custom)
// - range classifiers (IsManager, IsTask, IsCustom)
//
// Code implements error so scheduler operations can return it directly;
// callers that need the numeric wire value for a reply packet's status
// byte use byte(code).
package status
