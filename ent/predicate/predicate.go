// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Author is the predicate function for author builders.
type Author func(*sql.Selector)

// AuthorStats is the predicate function for authorstats builders.
type AuthorStats func(*sql.Selector)

// Conclusion is the predicate function for conclusion builders.
type Conclusion func(*sql.Selector)

// ConclusionVerdict is the predicate function for conclusionverdict builders.
type ConclusionVerdict func(*sql.Selector)

// Fact is the predicate function for fact builders.
type Fact func(*sql.Selector)

// FactEvaluation is the predicate function for factevaluation builders.
type FactEvaluation func(*sql.Selector)

// Logic is the predicate function for logic builders.
type Logic func(*sql.Selector)

// LogicRelation is the predicate function for logicrelation builders.
type LogicRelation func(*sql.Selector)

// MonitoredSource is the predicate function for monitoredsource builders.
type MonitoredSource func(*sql.Selector)

// PostQualityAssessment is the predicate function for postqualityassessment builders.
type PostQualityAssessment func(*sql.Selector)

// RawPost is the predicate function for rawpost builders.
type RawPost func(*sql.Selector)

// Solution is the predicate function for solution builders.
type Solution func(*sql.Selector)

// SolutionAssessment is the predicate function for solutionassessment builders.
type SolutionAssessment func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)

// VerificationReference is the predicate function for verificationreference builders.
type VerificationReference func(*sql.Selector)
