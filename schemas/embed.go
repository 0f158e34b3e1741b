// Package schemas holds the JSON Schemas of the analyzer's output artifacts.
package schemas

import (
	_ "embed"
)

// AnalysisResultFile is the file name of the result schema
const AnalysisResultFile = "analysis_result.schema.json"

// AnalysisResult is the JSON Schema of a ResumeAnalysisResult
//
//go:embed analysis_result.schema.json
var AnalysisResult []byte
