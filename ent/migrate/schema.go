// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuthorsColumns holds the columns for the "authors" table.
	AuthorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "platform", Type: field.TypeString},
		{Name: "platform_id", Type: field.TypeString, Nullable: true},
		{Name: "profile_url", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "role", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "expertise_areas", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "known_biases", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "credibility_tier", Type: field.TypeInt, Nullable: true},
		{Name: "profile_note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "profile_fetched", Type: field.TypeBool, Default: false},
		{Name: "profile_fetched_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuthorsTable holds the schema information for the "authors" table.
	AuthorsTable = &schema.Table{
		Name:       "authors",
		Columns:    AuthorsColumns,
		PrimaryKey: []*schema.Column{AuthorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "author_name",
				Unique:  false,
				Columns: []*schema.Column{AuthorsColumns[1]},
			},
			{
				Name:    "author_platform_platform_id",
				Unique:  true,
				Columns: []*schema.Column{AuthorsColumns[2], AuthorsColumns[3]},
			},
			{
				Name:    "author_profile_fetched",
				Unique:  false,
				Columns: []*schema.Column{AuthorsColumns[11]},
			},
		},
	}
	// AuthorStatsColumns holds the columns for the "author_stats" table.
	AuthorStatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "fact_accuracy_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "fact_accuracy_sample", Type: field.TypeInt, Default: 0},
		{Name: "conclusion_accuracy_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "conclusion_accuracy_sample", Type: field.TypeInt, Default: 0},
		{Name: "prediction_accuracy_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "prediction_accuracy_sample", Type: field.TypeInt, Default: 0},
		{Name: "logic_rigor_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "logic_rigor_sample", Type: field.TypeInt, Default: 0},
		{Name: "recommendation_reliability_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "recommendation_reliability_sample", Type: field.TypeInt, Default: 0},
		{Name: "content_uniqueness_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "content_uniqueness_sample", Type: field.TypeInt, Default: 0},
		{Name: "content_effectiveness_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "content_effectiveness_sample", Type: field.TypeInt, Default: 0},
		{Name: "overall_credibility_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "total_posts_analyzed", Type: field.TypeInt, Default: 0},
		{Name: "last_updated", Type: field.TypeTime},
		{Name: "author_id", Type: field.TypeInt, Unique: true},
	}
	// AuthorStatsTable holds the schema information for the "author_stats" table.
	AuthorStatsTable = &schema.Table{
		Name:       "author_stats",
		Columns:    AuthorStatsColumns,
		PrimaryKey: []*schema.Column{AuthorStatsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "author_stats_authors_stats",
				Columns:    []*schema.Column{AuthorStatsColumns[18]},
				RefColumns: []*schema.Column{AuthorsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ConclusionsColumns holds the columns for the "conclusions" table.
	ConclusionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "claim", Type: field.TypeString, Size: 2147483647},
		{Name: "canonical_claim", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "conclusion_type", Type: field.TypeEnum, Enums: []string{"retrospective", "predictive"}, Default: "retrospective"},
		{Name: "time_horizon_note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "valid_from", Type: field.TypeTime, Nullable: true},
		{Name: "valid_until", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "confirmed", "refuted", "unverifiable"}, Default: "pending"},
		{Name: "monitoring_source_org", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "monitoring_source_url", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "monitoring_period_note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "monitoring_start", Type: field.TypeTime, Nullable: true},
		{Name: "monitoring_end", Type: field.TypeTime, Nullable: true},
		{Name: "source_url", Type: field.TypeString},
		{Name: "source_platform", Type: field.TypeString},
		{Name: "posted_at", Type: field.TypeTime},
		{Name: "collected_at", Type: field.TypeTime},
		{Name: "raw_extraction", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "author_id", Type: field.TypeInt},
		{Name: "topic_id", Type: field.TypeInt},
	}
	// ConclusionsTable holds the schema information for the "conclusions" table.
	ConclusionsTable = &schema.Table{
		Name:       "conclusions",
		Columns:    ConclusionsColumns,
		PrimaryKey: []*schema.Column{ConclusionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conclusions_authors_conclusions",
				Columns:    []*schema.Column{ConclusionsColumns[18]},
				RefColumns: []*schema.Column{AuthorsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "conclusions_topics_conclusions",
				Columns:    []*schema.Column{ConclusionsColumns[19]},
				RefColumns: []*schema.Column{TopicsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conclusion_author_id",
				Unique:  false,
				Columns: []*schema.Column{ConclusionsColumns[18]},
			},
			{
				Name:    "conclusion_topic_id",
				Unique:  false,
				Columns: []*schema.Column{ConclusionsColumns[19]},
			},
			{
				Name:    "conclusion_canonical_claim",
				Unique:  false,
				Columns: []*schema.Column{ConclusionsColumns[2]},
			},
			{
				Name:    "conclusion_conclusion_type_status",
				Unique:  false,
				Columns: []*schema.Column{ConclusionsColumns[3], ConclusionsColumns[7]},
			},
		},
	}
	// ConclusionVerdictsColumns holds the columns for the "conclusion_verdicts" table.
	ConclusionVerdictsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "verdict", Type: field.TypeEnum, Enums: []string{"confirmed", "refuted", "partial", "pending", "expired", "unverifiable"}},
		{Name: "logic_trace", Type: field.TypeJSON, Nullable: true},
		{Name: "role_fit", Type: field.TypeEnum, Nullable: true, Enums: []string{"appropriate", "questionable", "mismatched"}},
		{Name: "role_fit_note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "derived_at", Type: field.TypeTime},
		{Name: "conclusion_id", Type: field.TypeInt},
	}
	// ConclusionVerdictsTable holds the schema information for the "conclusion_verdicts" table.
	ConclusionVerdictsTable = &schema.Table{
		Name:       "conclusion_verdicts",
		Columns:    ConclusionVerdictsColumns,
		PrimaryKey: []*schema.Column{ConclusionVerdictsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conclusion_verdicts_conclusions_verdicts",
				Columns:    []*schema.Column{ConclusionVerdictsColumns[6]},
				RefColumns: []*schema.Column{ConclusionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conclusionverdict_conclusion_id",
				Unique:  false,
				Columns: []*schema.Column{ConclusionVerdictsColumns[6]},
			},
			{
				Name:    "conclusionverdict_verdict",
				Unique:  false,
				Columns: []*schema.Column{ConclusionVerdictsColumns[1]},
			},
		},
	}
	// FactsColumns holds the columns for the "facts" table.
	FactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "claim", Type: field.TypeString, Size: 2147483647},
		{Name: "canonical_claim", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "verifiable_expression", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_verifiable", Type: field.TypeBool, Default: false},
		{Name: "verification_method", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "validity_start_note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "validity_end_note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "validity_start", Type: field.TypeTime, Nullable: true},
		{Name: "validity_end", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "verified_true", "verified_false", "unverifiable"}, Default: "pending"},
		{Name: "verified_at", Type: field.TypeTime, Nullable: true},
		{Name: "verification_evidence", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "verified_source_org", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "verified_source_url", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "verified_source_data", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "raw_post_id", Type: field.TypeInt, Nullable: true},
	}
	// FactsTable holds the schema information for the "facts" table.
	FactsTable = &schema.Table{
		Name:       "facts",
		Columns:    FactsColumns,
		PrimaryKey: []*schema.Column{FactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "facts_raw_posts_facts",
				Columns:    []*schema.Column{FactsColumns[17]},
				RefColumns: []*schema.Column{RawPostsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "fact_status",
				Unique:  false,
				Columns: []*schema.Column{FactsColumns[10]},
			},
			{
				Name:    "fact_raw_post_id",
				Unique:  false,
				Columns: []*schema.Column{FactsColumns[17]},
			},
			{
				Name:    "fact_canonical_claim",
				Unique:  false,
				Columns: []*schema.Column{FactsColumns[2]},
			},
			{
				Name:    "fact_is_verifiable_status",
				Unique:  false,
				Columns: []*schema.Column{FactsColumns[4], FactsColumns[10]},
			},
		},
	}
	// FactEvaluationsColumns holds the columns for the "fact_evaluations" table.
	FactEvaluationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "result", Type: field.TypeEnum, Enums: []string{"true", "false", "uncertain", "unavailable"}},
		{Name: "evidence_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "evidence_tier", Type: field.TypeInt, Nullable: true},
		{Name: "data_period", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "evaluator_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "evaluated_at", Type: field.TypeTime},
		{Name: "fact_id", Type: field.TypeInt},
	}
	// FactEvaluationsTable holds the schema information for the "fact_evaluations" table.
	FactEvaluationsTable = &schema.Table{
		Name:       "fact_evaluations",
		Columns:    FactEvaluationsColumns,
		PrimaryKey: []*schema.Column{FactEvaluationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "fact_evaluations_facts_evaluations",
				Columns:    []*schema.Column{FactEvaluationsColumns[7]},
				RefColumns: []*schema.Column{FactsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "factevaluation_fact_id",
				Unique:  false,
				Columns: []*schema.Column{FactEvaluationsColumns[7]},
			},
			{
				Name:    "factevaluation_result",
				Unique:  false,
				Columns: []*schema.Column{FactEvaluationsColumns[1]},
			},
		},
	}
	// LogicsColumns holds the columns for the "logics" table.
	LogicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "logic_type", Type: field.TypeEnum, Enums: []string{"inference", "derivation"}, Default: "inference"},
		{Name: "supporting_fact_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "assumption_fact_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "source_conclusion_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "logic_completeness", Type: field.TypeEnum, Nullable: true, Enums: []string{"complete", "partial", "weak", "invalid"}},
		{Name: "logic_note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "one_sentence_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "assessed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conclusion_id", Type: field.TypeInt, Nullable: true},
		{Name: "raw_post_id", Type: field.TypeInt, Nullable: true},
		{Name: "solution_id", Type: field.TypeInt, Nullable: true},
	}
	// LogicsTable holds the schema information for the "logics" table.
	LogicsTable = &schema.Table{
		Name:       "logics",
		Columns:    LogicsColumns,
		PrimaryKey: []*schema.Column{LogicsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "logics_conclusions_logics",
				Columns:    []*schema.Column{LogicsColumns[10]},
				RefColumns: []*schema.Column{ConclusionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "logics_raw_posts_logics",
				Columns:    []*schema.Column{LogicsColumns[11]},
				RefColumns: []*schema.Column{RawPostsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "logics_solutions_logics",
				Columns:    []*schema.Column{LogicsColumns[12]},
				RefColumns: []*schema.Column{SolutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "logic_conclusion_id",
				Unique:  false,
				Columns: []*schema.Column{LogicsColumns[10]},
			},
			{
				Name:    "logic_solution_id",
				Unique:  false,
				Columns: []*schema.Column{LogicsColumns[12]},
			},
			{
				Name:    "logic_raw_post_id",
				Unique:  false,
				Columns: []*schema.Column{LogicsColumns[11]},
			},
			{
				Name:    "logic_logic_type_logic_completeness",
				Unique:  false,
				Columns: []*schema.Column{LogicsColumns[1], LogicsColumns[5]},
			},
		},
	}
	// LogicRelationsColumns holds the columns for the "logic_relations" table.
	LogicRelationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "relation_type", Type: field.TypeEnum, Enums: []string{"supports", "contextualizes", "contradicts"}},
		{Name: "note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "from_logic_id", Type: field.TypeInt},
		{Name: "to_logic_id", Type: field.TypeInt},
	}
	// LogicRelationsTable holds the schema information for the "logic_relations" table.
	LogicRelationsTable = &schema.Table{
		Name:       "logic_relations",
		Columns:    LogicRelationsColumns,
		PrimaryKey: []*schema.Column{LogicRelationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "logic_relations_logics_outgoing_relations",
				Columns:    []*schema.Column{LogicRelationsColumns[4]},
				RefColumns: []*schema.Column{LogicsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "logic_relations_logics_incoming_relations",
				Columns:    []*schema.Column{LogicRelationsColumns[5]},
				RefColumns: []*schema.Column{LogicsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "logicrelation_from_logic_id_to_logic_id_relation_type",
				Unique:  true,
				Columns: []*schema.Column{LogicRelationsColumns[4], LogicRelationsColumns[5], LogicRelationsColumns[1]},
			},
		},
	}
	// MonitoredSourcesColumns holds the columns for the "monitored_sources" table.
	MonitoredSourcesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "url", Type: field.TypeString},
		{Name: "source_type", Type: field.TypeEnum, Enums: []string{"post", "profile"}},
		{Name: "platform", Type: field.TypeString},
		{Name: "platform_id", Type: field.TypeString},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "fetch_interval_minutes", Type: field.TypeInt, Default: 60},
		{Name: "last_fetched_at", Type: field.TypeTime, Nullable: true},
		{Name: "history_fetched", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "author_id", Type: field.TypeInt, Nullable: true},
	}
	// MonitoredSourcesTable holds the schema information for the "monitored_sources" table.
	MonitoredSourcesTable = &schema.Table{
		Name:       "monitored_sources",
		Columns:    MonitoredSourcesColumns,
		PrimaryKey: []*schema.Column{MonitoredSourcesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "monitored_sources_authors_monitored_sources",
				Columns:    []*schema.Column{MonitoredSourcesColumns[10]},
				RefColumns: []*schema.Column{AuthorsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "monitoredsource_platform_platform_id_source_type",
				Unique:  true,
				Columns: []*schema.Column{MonitoredSourcesColumns[3], MonitoredSourcesColumns[4], MonitoredSourcesColumns[2]},
			},
			{
				Name:    "monitoredsource_is_active_last_fetched_at",
				Unique:  false,
				Columns: []*schema.Column{MonitoredSourcesColumns[5], MonitoredSourcesColumns[7]},
			},
		},
	}
	// PostQualityAssessmentsColumns holds the columns for the "post_quality_assessments" table.
	PostQualityAssessmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "uniqueness_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "uniqueness_note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_first_mover", Type: field.TypeBool, Nullable: true},
		{Name: "similar_claim_count", Type: field.TypeInt, Default: 0},
		{Name: "similar_author_count", Type: field.TypeInt, Default: 0},
		{Name: "effectiveness_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "effectiveness_note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "noise_ratio", Type: field.TypeFloat64, Nullable: true},
		{Name: "noise_types", Type: field.TypeJSON, Nullable: true},
		{Name: "assessed_at", Type: field.TypeTime},
		{Name: "author_id", Type: field.TypeInt},
		{Name: "raw_post_id", Type: field.TypeInt, Unique: true},
	}
	// PostQualityAssessmentsTable holds the schema information for the "post_quality_assessments" table.
	PostQualityAssessmentsTable = &schema.Table{
		Name:       "post_quality_assessments",
		Columns:    PostQualityAssessmentsColumns,
		PrimaryKey: []*schema.Column{PostQualityAssessmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "post_quality_assessments_authors_quality_assessments",
				Columns:    []*schema.Column{PostQualityAssessmentsColumns[11]},
				RefColumns: []*schema.Column{AuthorsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "post_quality_assessments_raw_posts_quality_assessment",
				Columns:    []*schema.Column{PostQualityAssessmentsColumns[12]},
				RefColumns: []*schema.Column{RawPostsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "postqualityassessment_author_id",
				Unique:  false,
				Columns: []*schema.Column{PostQualityAssessmentsColumns[11]},
			},
		},
	}
	// RawPostsColumns holds the columns for the "raw_posts" table.
	RawPostsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source", Type: field.TypeString},
		{Name: "external_id", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "enriched_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "context_fetched", Type: field.TypeBool, Default: false},
		{Name: "has_context", Type: field.TypeBool, Default: false},
		{Name: "author_name", Type: field.TypeString},
		{Name: "author_platform_id", Type: field.TypeString, Nullable: true},
		{Name: "url", Type: field.TypeString},
		{Name: "posted_at", Type: field.TypeTime},
		{Name: "collected_at", Type: field.TypeTime},
		{Name: "raw_metadata", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "media_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_processed", Type: field.TypeBool, Default: false},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "monitored_source_id", Type: field.TypeInt, Nullable: true},
	}
	// RawPostsTable holds the schema information for the "raw_posts" table.
	RawPostsTable = &schema.Table{
		Name:       "raw_posts",
		Columns:    RawPostsColumns,
		PrimaryKey: []*schema.Column{RawPostsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "raw_posts_monitored_sources_raw_posts",
				Columns:    []*schema.Column{RawPostsColumns[16]},
				RefColumns: []*schema.Column{MonitoredSourcesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "rawpost_source_external_id",
				Unique:  true,
				Columns: []*schema.Column{RawPostsColumns[1], RawPostsColumns[2]},
			},
			{
				Name:    "rawpost_is_processed",
				Unique:  false,
				Columns: []*schema.Column{RawPostsColumns[14]},
			},
			{
				Name:    "rawpost_author_platform_id",
				Unique:  false,
				Columns: []*schema.Column{RawPostsColumns[8]},
			},
			{
				Name:    "rawpost_posted_at",
				Unique:  false,
				Columns: []*schema.Column{RawPostsColumns[10]},
			},
		},
	}
	// SolutionsColumns holds the columns for the "solutions" table.
	SolutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "claim", Type: field.TypeString, Size: 2147483647},
		{Name: "canonical_claim", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "action_type", Type: field.TypeEnum, Nullable: true, Enums: []string{"buy", "sell", "hold", "short", "diversify", "hedge", "reduce"}},
		{Name: "action_target", Type: field.TypeString, Nullable: true},
		{Name: "action_rationale", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "simulated_action_note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "monitoring_source_org", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "monitoring_source_url", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "monitoring_period_note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "monitoring_start", Type: field.TypeTime, Nullable: true},
		{Name: "monitoring_end", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "validated", "invalidated", "unverifiable"}, Default: "pending"},
		{Name: "source_url", Type: field.TypeString, Nullable: true},
		{Name: "source_platform", Type: field.TypeString, Nullable: true},
		{Name: "posted_at", Type: field.TypeTime, Nullable: true},
		{Name: "collected_at", Type: field.TypeTime},
		{Name: "raw_extraction", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "author_id", Type: field.TypeInt},
		{Name: "topic_id", Type: field.TypeInt, Nullable: true},
	}
	// SolutionsTable holds the schema information for the "solutions" table.
	SolutionsTable = &schema.Table{
		Name:       "solutions",
		Columns:    SolutionsColumns,
		PrimaryKey: []*schema.Column{SolutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "solutions_authors_solutions",
				Columns:    []*schema.Column{SolutionsColumns[18]},
				RefColumns: []*schema.Column{AuthorsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "solutions_topics_solutions",
				Columns:    []*schema.Column{SolutionsColumns[19]},
				RefColumns: []*schema.Column{TopicsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "solution_author_id",
				Unique:  false,
				Columns: []*schema.Column{SolutionsColumns[18]},
			},
			{
				Name:    "solution_status",
				Unique:  false,
				Columns: []*schema.Column{SolutionsColumns[12]},
			},
		},
	}
	// SolutionAssessmentsColumns holds the columns for the "solution_assessments" table.
	SolutionAssessmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "verdict", Type: field.TypeEnum, Enums: []string{"confirmed", "refuted", "partial", "pending", "expired", "unverifiable"}},
		{Name: "evidence_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "evidence_tier", Type: field.TypeInt, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "role_fit", Type: field.TypeEnum, Nullable: true, Enums: []string{"appropriate", "questionable", "mismatched"}},
		{Name: "role_fit_note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "assessed_at", Type: field.TypeTime},
		{Name: "solution_id", Type: field.TypeInt},
	}
	// SolutionAssessmentsTable holds the schema information for the "solution_assessments" table.
	SolutionAssessmentsTable = &schema.Table{
		Name:       "solution_assessments",
		Columns:    SolutionAssessmentsColumns,
		PrimaryKey: []*schema.Column{SolutionAssessmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "solution_assessments_solutions_assessments",
				Columns:    []*schema.Column{SolutionAssessmentsColumns[8]},
				RefColumns: []*schema.Column{SolutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "solutionassessment_solution_id",
				Unique:  false,
				Columns: []*schema.Column{SolutionAssessmentsColumns[8]},
			},
			{
				Name:    "solutionassessment_verdict",
				Unique:  false,
				Columns: []*schema.Column{SolutionAssessmentsColumns[1]},
			},
		},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tags", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
	}
	// VerificationReferencesColumns holds the columns for the "verification_references" table.
	VerificationReferencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "organization", Type: field.TypeString},
		{Name: "data_description", Type: field.TypeString, Size: 2147483647},
		{Name: "url", Type: field.TypeString, Nullable: true},
		{Name: "url_note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "fact_id", Type: field.TypeInt},
	}
	// VerificationReferencesTable holds the schema information for the "verification_references" table.
	VerificationReferencesTable = &schema.Table{
		Name:       "verification_references",
		Columns:    VerificationReferencesColumns,
		PrimaryKey: []*schema.Column{VerificationReferencesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "verification_references_facts_references",
				Columns:    []*schema.Column{VerificationReferencesColumns[5]},
				RefColumns: []*schema.Column{FactsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "verificationreference_fact_id",
				Unique:  false,
				Columns: []*schema.Column{VerificationReferencesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuthorsTable,
		AuthorStatsTable,
		ConclusionsTable,
		ConclusionVerdictsTable,
		FactsTable,
		FactEvaluationsTable,
		LogicsTable,
		LogicRelationsTable,
		MonitoredSourcesTable,
		PostQualityAssessmentsTable,
		RawPostsTable,
		SolutionsTable,
		SolutionAssessmentsTable,
		TopicsTable,
		VerificationReferencesTable,
	}
)

func init() {
	AuthorStatsTable.ForeignKeys[0].RefTable = AuthorsTable
	ConclusionsTable.ForeignKeys[0].RefTable = AuthorsTable
	ConclusionsTable.ForeignKeys[1].RefTable = TopicsTable
	ConclusionVerdictsTable.ForeignKeys[0].RefTable = ConclusionsTable
	FactsTable.ForeignKeys[0].RefTable = RawPostsTable
	FactEvaluationsTable.ForeignKeys[0].RefTable = FactsTable
	LogicsTable.ForeignKeys[0].RefTable = ConclusionsTable
	LogicsTable.ForeignKeys[1].RefTable = RawPostsTable
	LogicsTable.ForeignKeys[2].RefTable = SolutionsTable
	LogicRelationsTable.ForeignKeys[0].RefTable = LogicsTable
	LogicRelationsTable.ForeignKeys[1].RefTable = LogicsTable
	MonitoredSourcesTable.ForeignKeys[0].RefTable = AuthorsTable
	PostQualityAssessmentsTable.ForeignKeys[0].RefTable = AuthorsTable
	PostQualityAssessmentsTable.ForeignKeys[1].RefTable = RawPostsTable
	RawPostsTable.ForeignKeys[0].RefTable = MonitoredSourcesTable
	SolutionsTable.ForeignKeys[0].RefTable = AuthorsTable
	SolutionsTable.ForeignKeys[1].RefTable = TopicsTable
	SolutionAssessmentsTable.ForeignKeys[0].RefTable = SolutionsTable
	VerificationReferencesTable.ForeignKeys[0].RefTable = FactsTable
}
