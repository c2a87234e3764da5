// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package platform

// Report is the full classification of one OS name and environment.
type Report struct {
	OSName     string `json:"osName" yaml:"osName"`
	Family     Family `json:"family" yaml:"family"`
	WindowsEnv `yaml:",inline"`
}

// Describe classifies osName and evaluates the Windows sub-environment checks
// against lookup.
func Describe(osName string, lookup Lookup) Report {
	return Report{
		OSName:     osName,
		Family:     Classify(osName),
		WindowsEnv: DetectWindowsEnv(osName, lookup),
	}
}

// DescribeCurrent describes this process using the live environment.
func DescribeCurrent() Report {
	return Describe(CurrentOSName(), OSLookup())
}
