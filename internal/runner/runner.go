package runner

import (
	"context"
	stderrors "errors"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/asmtgen/internal/config"
	"github.com/yungbote/asmtgen/internal/domain"
	"github.com/yungbote/asmtgen/internal/generators/assessment"
	"github.com/yungbote/asmtgen/internal/generators/hierarchy"
	"github.com/yungbote/asmtgen/internal/generators/population"
	"github.com/yungbote/asmtgen/internal/pkg/errors"
	"github.com/yungbote/asmtgen/internal/platform/idgen"
	"github.com/yungbote/asmtgen/internal/platform/logger"
)

// OutputWorker is one output sink of a run. Prepare runs before any write;
// write calls arrive single-threaded after generation finished.
type OutputWorker interface {
	Prepare() error
	WriteAssessments([]*domain.Assessment) error
	WriteHierarchies([]*domain.InstitutionHierarchy) error
	WriteStudents([]*domain.Student) error
	WriteOutcomes(asmtGuid string, results []*domain.AssessmentOutcome) error
	Cleanup() error
}

// Stats summarizes one run.
type Stats struct {
	Schools     int
	Students    int
	Assessments int
	Outcomes    int
}

// assessmentSet is the definitions administered for one subject and grade:
// the summative plus the interims offered to interim-taking schools.
type assessmentSet struct {
	summative *domain.Assessment
	interims  []*domain.Assessment
}

type Runner struct {
	cfg     config.Config
	engine  *assessment.Engine
	idg     *idgen.IDGen
	log     *logger.Logger
	outputs []OutputWorker
}

func New(cfg config.Config, engine *assessment.Engine, idg *idgen.IDGen, log *logger.Logger, outputs ...OutputWorker) *Runner {
	return &Runner{
		cfg:     cfg,
		engine:  engine,
		idg:     idg,
		log:     log.With("service", "Runner"),
		outputs: outputs,
	}
}

// Run generates one full dataset: hierarchy, population, assessment
// definitions, then per-student outcome histories fanned out across
// workers, and finally hands everything to the output workers.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	seed := r.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	r.log.Info("Starting generation", "seed", seed, "workers", r.cfg.Workers)

	state := hierarchy.GenerateState(r.cfg.State.Name, r.cfg.State.Code)
	var hiers []*domain.InstitutionHierarchy
	var schools []*domain.School
	for d := 0; d < r.cfg.Districts; d++ {
		district := hierarchy.GenerateDistrict(rng, state, r.idg)
		for s := 0; s < r.cfg.SchoolsPerDistrict; s++ {
			school := hierarchy.GenerateSchool(rng, district, r.idg, r.cfg.InterimRate)
			schools = append(schools, school)
			hiers = append(hiers, hierarchy.GenerateInstitutionHierarchy(school, r.idg))
		}
	}
	hierBySchool := make(map[string]*domain.InstitutionHierarchy, len(hiers))
	for _, h := range hiers {
		hierBySchool[h.School.Guid] = h
	}
	stats.Schools = len(schools)

	sets, allAsmts := r.generateAssessments(rng)
	stats.Assessments = len(allAsmts)

	var students []*domain.Student
	for _, school := range schools {
		for _, grade := range r.cfg.Grades {
			graded := false
			for _, subject := range r.cfg.Subjects {
				if _, ok := sets[setKey(subject, grade)]; ok {
					graded = true
					break
				}
			}
			if !graded {
				continue
			}
			for i := 0; i < r.cfg.StudentsPerGrade; i++ {
				students = append(students, population.GenerateStudent(rng, school, grade, r.idg, r.cfg.AcademicYear))
			}
		}
	}
	stats.Students = len(students)

	targetDate := time.Date(r.cfg.AcademicYear, time.May, 15, 0, 0, 0, 0, time.UTC)
	rates := assessment.Rates{
		Skip:   r.cfg.Rates.Skip,
		Retake: r.cfg.Rates.Retake,
		Delete: r.cfg.Rates.Delete,
		Update: r.cfg.Rates.Update,
	}

	// Per-student generation is embarrassingly parallel: each worker owns a
	// private outcome map seeded off the student's record id, merged after
	// the group finishes.
	maps := make([]assessment.OutcomeMap, len(students))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i, student := range students {
		i, student := i, student
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			results := assessment.OutcomeMap{}
			srng := rand.New(rand.NewSource(seed + student.RecID))
			for _, subject := range r.cfg.Subjects {
				set, ok := sets[setKey(subject, student.Grade)]
				if !ok {
					continue
				}
				interims := set.interims
				if !student.School.TakesInterims {
					interims = nil
				}
				if err := r.engine.GenerateStudentOutcomes(srng, targetDate, student, hierBySchool[student.School.Guid], set.summative, interims, results, rates, r.cfg.GenerateItems); err != nil {
					return fmt.Errorf("student %s: %w", student.Guid, err)
				}
			}
			maps[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats, err
	}

	merged := assessment.OutcomeMap{}
	for _, m := range maps {
		merged.Merge(m)
	}
	for _, outcomes := range merged {
		stats.Outcomes += len(outcomes)
	}

	if err := r.write(allAsmts, hiers, students, merged); err != nil {
		return stats, err
	}

	r.log.Info("Generation finished",
		"schools", stats.Schools,
		"students", stats.Students,
		"assessments", stats.Assessments,
		"outcomes", stats.Outcomes,
	)
	return stats, nil
}

// generateAssessments builds the summative and interim definitions per
// subject and grade. A subject or grade the scoring tables do not define is
// reported and skipped, not fatal for the run.
func (r *Runner) generateAssessments(rng *rand.Rand) (map[string]*assessmentSet, []*domain.Assessment) {
	sets := make(map[string]*assessmentSet)
	var all []*domain.Assessment

	for _, subject := range r.cfg.Subjects {
		for _, grade := range r.cfg.Grades {
			summative, err := r.engine.GenerateAssessment(rng, domain.TypeSummative, r.cfg.AcademicYear, subject, grade, r.cfg.GenerateItems)
			if err != nil {
				if stderrors.Is(err, errors.ErrUnknownSubject) || stderrors.Is(err, errors.ErrUnsupportedAssessmentType) {
					r.log.Warn("Skipping assessment definition", "subject", subject, "grade", grade, "error", err)
					continue
				}
				r.log.Error("Assessment generation failed", "subject", subject, "grade", grade, "error", err)
				continue
			}

			set := &assessmentSet{summative: summative}
			for _, typ := range []string{domain.TypeInterimComprehensive, domain.TypeInterimBlock, domain.TypeInterimBlock} {
				interim, err := r.engine.GenerateAssessment(rng, typ, r.cfg.AcademicYear, subject, grade, r.cfg.GenerateItems)
				if err != nil {
					r.log.Warn("Skipping interim definition", "type", typ, "subject", subject, "grade", grade, "error", err)
					continue
				}
				set.interims = append(set.interims, interim)
			}
			sets[setKey(subject, grade)] = set
			all = append(all, summative)
			all = append(all, set.interims...)
		}
	}
	return sets, all
}

func (r *Runner) write(asmts []*domain.Assessment, hiers []*domain.InstitutionHierarchy, students []*domain.Student, merged assessment.OutcomeMap) error {
	for _, out := range r.outputs {
		if err := out.Prepare(); err != nil {
			return fmt.Errorf("prepare output: %w", err)
		}
		if err := out.WriteAssessments(asmts); err != nil {
			return fmt.Errorf("write assessments: %w", err)
		}
		if err := out.WriteHierarchies(hiers); err != nil {
			return fmt.Errorf("write hierarchies: %w", err)
		}
		if err := out.WriteStudents(students); err != nil {
			return fmt.Errorf("write students: %w", err)
		}
		// Iterate definitions, not the map, so output order is stable.
		for _, asmt := range asmts {
			outcomes, ok := merged[asmt.Guid]
			if !ok {
				continue
			}
			if err := out.WriteOutcomes(asmt.Guid, outcomes); err != nil {
				return fmt.Errorf("write outcomes for %s: %w", asmt.Guid, err)
			}
		}
		if err := out.Cleanup(); err != nil {
			return fmt.Errorf("cleanup output: %w", err)
		}
	}
	return nil
}

func setKey(subject string, grade int) string {
	return fmt.Sprintf("%s-%d", subject, grade)
}
