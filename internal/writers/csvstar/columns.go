package csvstar

import "fmt"

func columnf(format string, i int) string {
	return fmt.Sprintf(format, i)
}

// Output files of the star schema, fixed column lists. Order here is the
// column contract consumed downstream; append-only.

const (
	fileFactAsmtOutcome      = "fact_asmt_outcome.csv"
	fileFactAsmtOutcomeVW    = "fact_asmt_outcome_vw.csv"
	fileFactBlockAsmtOutcome = "fact_block_asmt_outcome.csv"
	fileDimAsmt              = "dim_asmt.csv"
	fileDimInstHier          = "dim_hier.csv"
	fileDimStudent           = "dim_student.csv"
)

var accommodationColumns = []string{
	"acc_asl_video_embed",
	"acc_braille_embed",
	"acc_closed_captioning_embed",
	"acc_text_to_speech_embed",
	"acc_abacus_nonembed",
	"acc_alternate_response_options_nonembed",
	"acc_calculator_nonembed",
	"acc_multiplication_table_nonembed",
	"acc_print_on_demand_nonembed",
	"acc_print_on_demand_items_nonembed",
	"acc_read_aloud_nonembed",
	"acc_scribe_nonembed",
	"acc_speech_to_text_nonembed",
	"acc_noise_buffer_nonembed",
	"acc_streamline_mode",
}

var dimAsmtColumns = []string{
	"asmt_rec_id",
	"asmt_guid",
	"asmt_type",
	"asmt_period",
	"asmt_period_year",
	"asmt_version",
	"asmt_subject",
	"asmt_grade",
	"effective_date",
	"from_date",
	"to_date",
	"asmt_score_min",
	"asmt_score_max",
	"asmt_cut_point_1",
	"asmt_cut_point_2",
	"asmt_cut_point_3",
	"asmt_perf_lvl_name_1",
	"asmt_perf_lvl_name_2",
	"asmt_perf_lvl_name_3",
	"asmt_perf_lvl_name_4",
	"asmt_claim_1_name",
	"asmt_claim_2_name",
	"asmt_claim_3_name",
	"asmt_claim_4_name",
	"asmt_claim_perf_lvl_name_1",
	"asmt_claim_perf_lvl_name_2",
	"asmt_claim_perf_lvl_name_3",
	"rec_status",
	"batch_guid",
}

var dimInstHierColumns = []string{
	"inst_hier_rec_id",
	"inst_hier_guid",
	"state_code",
	"state_name",
	"district_id",
	"district_name",
	"school_id",
	"school_name",
	"from_date",
	"to_date",
	"rec_status",
	"batch_guid",
}

var dimStudentColumns = []string{
	"student_rec_id",
	"student_guid",
	"external_student_id",
	"first_name",
	"middle_name",
	"last_name",
	"birthdate",
	"sex",
	"grade",
	"lang_code",
	"eng_prof_lvl",
	"state_code",
	"district_id",
	"school_id",
	"school_name",
	"dmg_eth_hsp",
	"dmg_eth_ami",
	"dmg_eth_asn",
	"dmg_eth_blk",
	"dmg_eth_wht",
	"dmg_eth_pcf",
	"dmg_eth_2om",
	"dmg_prg_iep",
	"dmg_prg_lep",
	"dmg_prg_504",
	"dmg_sts_ecd",
	"from_date",
	"to_date",
	"rec_status",
	"batch_guid",
}

// factScoreColumns is the shared tail of every fact table after the record
// id: keys, hierarchy, dates, scores and accommodation counters.
func factColumns(recIDColumn string, withClaims bool) []string {
	cols := []string{
		recIDColumn,
		"asmt_rec_id",
		"student_rec_id",
		"inst_hier_rec_id",
		"asmt_guid",
		"student_guid",
		"state_code",
		"district_id",
		"school_id",
		"asmt_type",
		"asmt_grade",
		"enrl_grade",
		"date_taken",
		"date_taken_day",
		"date_taken_month",
		"date_taken_year",
		"asmt_score",
		"asmt_score_range_min",
		"asmt_score_range_max",
		"asmt_perf_lvl",
	}
	if withClaims {
		for i := 1; i <= 4; i++ {
			cols = append(cols,
				columnf("asmt_claim_%d_score", i),
				columnf("asmt_claim_%d_score_range_min", i),
				columnf("asmt_claim_%d_score_range_max", i),
				columnf("asmt_claim_%d_perf_lvl", i),
			)
		}
	}
	cols = append(cols, accommodationColumns...)
	cols = append(cols, "rec_status", "batch_guid")
	return cols
}

var (
	factAsmtOutcomeColumns      = factColumns("asmt_outcome_rec_id", true)
	factAsmtOutcomeVWColumns    = factColumns("asmt_outcome_vw_rec_id", true)
	factBlockAsmtOutcomeColumns = factColumns("block_asmt_outcome_rec_id", false)
)
