package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/placementhub/placement-mentor-hub/internal/repository"
	"github.com/placementhub/placement-mentor-hub/pkg/apperror"
)

// In-memory repository fakes. They honor the same contracts as the gorm
// implementations, including the typed errors, so service rules can be
// exercised without a database.

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User, trainer *model.Trainer, student *model.Student) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return apperror.ErrDuplicateEmail
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	// Store a copy, like a real row: later mutations of the caller's
	// struct must not leak into the stored record.
	stored := *user
	r.users[user.ID] = &stored
	if trainer != nil {
		trainer.UserID = user.ID
		if trainer.ID == uuid.Nil {
			trainer.ID = uuid.New()
		}
	}
	if student != nil {
		student.UserID = user.ID
		if student.ID == uuid.Nil {
			student.ID = uuid.New()
		}
	}
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperror.ErrNotFound
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeTrainerRepo struct {
	trainers map[uuid.UUID]*model.Trainer
}

func newFakeTrainerRepo() *fakeTrainerRepo {
	return &fakeTrainerRepo{trainers: make(map[uuid.UUID]*model.Trainer)}
}

func (r *fakeTrainerRepo) Create(_ context.Context, trainer *model.Trainer) error {
	if trainer.ID == uuid.Nil {
		trainer.ID = uuid.New()
	}
	r.trainers[trainer.ID] = trainer
	return nil
}

func (r *fakeTrainerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Trainer, error) {
	trainer, ok := r.trainers[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return trainer, nil
}

func (r *fakeTrainerRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*model.Trainer, error) {
	for _, trainer := range r.trainers {
		if trainer.UserID == userID {
			return trainer, nil
		}
	}
	return nil, apperror.ErrNotFound
}

func (r *fakeTrainerRepo) FindAllActive(_ context.Context) ([]*model.Trainer, error) {
	var active []*model.Trainer
	for _, trainer := range r.trainers {
		if trainer.IsActive {
			active = append(active, trainer)
		}
	}
	return active, nil
}

func (r *fakeTrainerRepo) Save(_ context.Context, trainer *model.Trainer) error {
	r.trainers[trainer.ID] = trainer
	return nil
}

type fakeStudentRepo struct {
	students map[uuid.UUID]*model.Student
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[uuid.UUID]*model.Student)}
}

func (r *fakeStudentRepo) Create(_ context.Context, student *model.Student) error {
	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}
	r.students[student.ID] = student
	return nil
}

func (r *fakeStudentRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Student, error) {
	student, ok := r.students[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return student, nil
}

func (r *fakeStudentRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*model.Student, error) {
	for _, student := range r.students {
		if student.UserID == userID {
			return student, nil
		}
	}
	return nil, apperror.ErrNotFound
}

func (r *fakeStudentRepo) FindAll(_ context.Context) ([]*model.Student, error) {
	var all []*model.Student
	for _, student := range r.students {
		all = append(all, student)
	}
	return all, nil
}

func (r *fakeStudentRepo) Save(_ context.Context, student *model.Student) error {
	r.students[student.ID] = student
	return nil
}

type fakeRelationRepo struct {
	relations map[uuid.UUID]*model.TrainerStudentRelation
	trainers  *fakeTrainerRepo
	students  *fakeStudentRepo
}

func newFakeRelationRepo(trainers *fakeTrainerRepo, students *fakeStudentRepo) *fakeRelationRepo {
	return &fakeRelationRepo{
		relations: make(map[uuid.UUID]*model.TrainerStudentRelation),
		trainers:  trainers,
		students:  students,
	}
}

func (r *fakeRelationRepo) CreateActive(_ context.Context, relation *model.TrainerStudentRelation) error {
	for _, existing := range r.relations {
		if existing.TrainerID == relation.TrainerID &&
			existing.StudentID == relation.StudentID &&
			existing.Status == model.RelationActive {
			return apperror.ErrDuplicateActiveRelation
		}
	}
	if relation.ID == uuid.Nil {
		relation.ID = uuid.New()
	}
	relation.Status = model.RelationActive
	r.relations[relation.ID] = relation
	if trainer, ok := r.trainers.trainers[relation.TrainerID]; ok {
		trainer.TotalStudentsAssisted++
	}
	return nil
}

func (r *fakeRelationRepo) FindByID(_ context.Context, id uuid.UUID) (*model.TrainerStudentRelation, error) {
	relation, ok := r.relations[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	relation.Trainer = r.trainers.trainers[relation.TrainerID]
	relation.Student = r.students.students[relation.StudentID]
	return relation, nil
}

func (r *fakeRelationRepo) Close(_ context.Context, id uuid.UUID, endedAt time.Time) (*model.TrainerStudentRelation, error) {
	relation, ok := r.relations[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	if relation.Status == model.RelationClosed {
		return nil, apperror.ErrAlreadyClosed
	}
	relation.Status = model.RelationClosed
	relation.EndedAt = &endedAt
	return relation, nil
}

func (r *fakeRelationRepo) Rate(_ context.Context, id uuid.UUID, rating float64) error {
	relation, ok := r.relations[id]
	if !ok {
		return apperror.ErrNotFound
	}
	relation.StudentRatingForTrainer = rating

	trainer, ok := r.trainers.trainers[relation.TrainerID]
	if !ok {
		return nil
	}
	count, sum := 0, 0.0
	for _, rel := range r.relations {
		if rel.TrainerID == relation.TrainerID && rel.StudentRatingForTrainer > 0 {
			count++
			sum += rel.StudentRatingForTrainer
		}
	}
	trainer.RatingCount = count
	if count > 0 {
		trainer.RatingAverage = sum / float64(count)
	} else {
		trainer.RatingAverage = 0
	}
	return nil
}

func (r *fakeRelationRepo) ListByStudent(_ context.Context, studentID uuid.UUID) ([]*model.TrainerStudentRelation, error) {
	var relations []*model.TrainerStudentRelation
	for _, relation := range r.relations {
		if relation.StudentID == studentID {
			relations = append(relations, relation)
		}
	}
	return relations, nil
}

func (r *fakeRelationRepo) ListByTrainer(_ context.Context, trainerID uuid.UUID) ([]*model.TrainerStudentRelation, error) {
	var relations []*model.TrainerStudentRelation
	for _, relation := range r.relations {
		if relation.TrainerID == trainerID {
			relations = append(relations, relation)
		}
	}
	return relations, nil
}

type fakeDoubtRepo struct {
	doubts    []*model.Doubt
	relations *fakeRelationRepo
}

func newFakeDoubtRepo(relations *fakeRelationRepo) *fakeDoubtRepo {
	return &fakeDoubtRepo{relations: relations}
}

func (r *fakeDoubtRepo) CreateWithCounter(_ context.Context, doubt *model.Doubt) error {
	relation, ok := r.relations.relations[doubt.RelationID]
	if !ok {
		return apperror.ErrNotFound
	}
	if doubt.ID == uuid.Nil {
		doubt.ID = uuid.New()
	}
	r.doubts = append(r.doubts, doubt)
	if doubt.Type == model.DoubtTypeAnswer {
		relation.TotalDoubtsAnswered++
	} else {
		relation.TotalDoubtsAsked++
	}
	return nil
}

func (r *fakeDoubtRepo) ListByRelation(_ context.Context, relationID uuid.UUID) ([]*model.Doubt, error) {
	var doubts []*model.Doubt
	for _, doubt := range r.doubts {
		if doubt.RelationID == relationID {
			doubts = append(doubts, doubt)
		}
	}
	return doubts, nil
}

type progressKey struct {
	studentID uuid.UUID
	skill     string
	topic     string
}

type fakeProgressRepo struct {
	rows map[progressKey]*model.SkillProgress
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{rows: make(map[progressKey]*model.SkillProgress)}
}

func (r *fakeProgressRepo) Upsert(_ context.Context, progress *model.SkillProgress) error {
	key := progressKey{progress.StudentID, progress.SkillName, progress.TopicName}
	if existing, ok := r.rows[key]; ok {
		existing.ProblemCount = progress.ProblemCount
		existing.DoneProblemCount = progress.DoneProblemCount
		*progress = *existing
		return nil
	}
	if progress.ID == uuid.Nil {
		progress.ID = uuid.New()
	}
	r.rows[key] = progress
	return nil
}

func (r *fakeProgressRepo) Find(_ context.Context, studentID uuid.UUID, skill, topic string) (*model.SkillProgress, error) {
	progress, ok := r.rows[progressKey{studentID, skill, topic}]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return progress, nil
}

func (r *fakeProgressRepo) ListByStudent(_ context.Context, studentID uuid.UUID) ([]*model.SkillProgress, error) {
	var rows []*model.SkillProgress
	for _, progress := range r.rows {
		if progress.StudentID == studentID {
			rows = append(rows, progress)
		}
	}
	return rows, nil
}

type fakeFocusRepo struct {
	sessions map[uuid.UUID]*model.FocusSession
}

func newFakeFocusRepo() *fakeFocusRepo {
	return &fakeFocusRepo{sessions: make(map[uuid.UUID]*model.FocusSession)}
}

func (r *fakeFocusRepo) Create(_ context.Context, session *model.FocusSession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	r.sessions[session.ID] = session
	return nil
}

func (r *fakeFocusRepo) FindByID(_ context.Context, id uuid.UUID) (*model.FocusSession, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return session, nil
}

func (r *fakeFocusRepo) Save(_ context.Context, session *model.FocusSession) error {
	r.sessions[session.ID] = session
	return nil
}

func (r *fakeFocusRepo) ListByStudent(_ context.Context, studentID uuid.UUID) ([]*model.FocusSession, error) {
	var sessions []*model.FocusSession
	for _, session := range r.sessions {
		if session.StudentID == studentID {
			sessions = append(sessions, session)
		}
	}
	return sessions, nil
}

type fakeProjectRepo struct {
	projects map[uuid.UUID]*model.Project
	logs     []*model.ProjectLog
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[uuid.UUID]*model.Project)}
}

func (r *fakeProjectRepo) Create(_ context.Context, project *model.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Project, error) {
	project, ok := r.projects[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return project, nil
}

func (r *fakeProjectRepo) ListByStudent(_ context.Context, studentID uuid.UUID) ([]*model.Project, error) {
	var projects []*model.Project
	for _, project := range r.projects {
		if project.StudentID == studentID {
			projects = append(projects, project)
		}
	}
	return projects, nil
}

func (r *fakeProjectRepo) AddLog(_ context.Context, log *model.ProjectLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	r.logs = append(r.logs, log)
	return nil
}

func (r *fakeProjectRepo) ListLogs(_ context.Context, projectID uuid.UUID) ([]*model.ProjectLog, error) {
	var logs []*model.ProjectLog
	for _, log := range r.logs {
		if log.ProjectID == projectID {
			logs = append(logs, log)
		}
	}
	return logs, nil
}

type fakeResumeRepo struct {
	resumes map[uuid.UUID]*model.Resume
	scans   []*model.ATSScan
}

func newFakeResumeRepo() *fakeResumeRepo {
	return &fakeResumeRepo{resumes: make(map[uuid.UUID]*model.Resume)}
}

func (r *fakeResumeRepo) Create(_ context.Context, resume *model.Resume) error {
	if resume.ID == uuid.Nil {
		resume.ID = uuid.New()
	}
	r.resumes[resume.ID] = resume
	return nil
}

func (r *fakeResumeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Resume, error) {
	resume, ok := r.resumes[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return resume, nil
}

func (r *fakeResumeRepo) ListByStudent(_ context.Context, studentID uuid.UUID) ([]*model.Resume, error) {
	var resumes []*model.Resume
	for _, resume := range r.resumes {
		if resume.StudentID == studentID {
			resumes = append(resumes, resume)
		}
	}
	return resumes, nil
}

func (r *fakeResumeRepo) AddScan(_ context.Context, scan *model.ATSScan) error {
	if scan.ID == uuid.Nil {
		scan.ID = uuid.New()
	}
	r.scans = append(r.scans, scan)
	return nil
}

func (r *fakeResumeRepo) ListScans(_ context.Context, resumeID uuid.UUID) ([]*model.ATSScan, error) {
	var scans []*model.ATSScan
	for _, scan := range r.scans {
		if scan.ResumeID == resumeID {
			scans = append(scans, scan)
		}
	}
	return scans, nil
}

type fakeApplicationRepo struct {
	applications map[uuid.UUID]*model.JobApplication
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[uuid.UUID]*model.JobApplication)}
}

func (r *fakeApplicationRepo) Create(_ context.Context, application *model.JobApplication) error {
	if application.ID == uuid.Nil {
		application.ID = uuid.New()
	}
	if application.Status == "" {
		application.Status = model.StatusToApply
	}
	r.applications[application.ID] = application
	return nil
}

func (r *fakeApplicationRepo) FindByID(_ context.Context, id uuid.UUID) (*model.JobApplication, error) {
	application, ok := r.applications[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return application, nil
}

func (r *fakeApplicationRepo) ListByStudent(_ context.Context, studentID uuid.UUID) ([]*model.JobApplication, error) {
	var applications []*model.JobApplication
	for _, application := range r.applications {
		if application.StudentID == studentID {
			applications = append(applications, application)
		}
	}
	return applications, nil
}

func (r *fakeApplicationRepo) Save(_ context.Context, application *model.JobApplication) error {
	r.applications[application.ID] = application
	return nil
}

type fakeBadgeRepo struct {
	badges []*model.Badge
}

func newFakeBadgeRepo() *fakeBadgeRepo {
	return &fakeBadgeRepo{}
}

func (r *fakeBadgeRepo) FirstOrCreate(_ context.Context, badge *model.Badge) (bool, error) {
	for _, existing := range r.badges {
		if existing.StudentID == badge.StudentID && existing.BadgeKey == badge.BadgeKey {
			*badge = *existing
			return false, nil
		}
	}
	if badge.ID == uuid.Nil {
		badge.ID = uuid.New()
	}
	if badge.UnlockedAt.IsZero() {
		badge.UnlockedAt = time.Now().UTC()
	}
	stored := *badge
	r.badges = append(r.badges, &stored)
	return true, nil
}

func (r *fakeBadgeRepo) ListByStudent(_ context.Context, studentID uuid.UUID) ([]*model.Badge, error) {
	var badges []*model.Badge
	for _, badge := range r.badges {
		if badge.StudentID == studentID {
			badges = append(badges, badge)
		}
	}
	return badges, nil
}

type fakeLeaderboardRepo struct {
	entries []repository.LeaderboardEntry
}

func (r *fakeLeaderboardRepo) TopStudents(_ context.Context, limit int) ([]repository.LeaderboardEntry, error) {
	if limit < len(r.entries) {
		return r.entries[:limit], nil
	}
	return r.entries, nil
}

// compile-time interface checks
var (
	_ repository.UserRepository        = (*fakeUserRepo)(nil)
	_ repository.TrainerRepository     = (*fakeTrainerRepo)(nil)
	_ repository.StudentRepository     = (*fakeStudentRepo)(nil)
	_ repository.RelationRepository    = (*fakeRelationRepo)(nil)
	_ repository.DoubtRepository       = (*fakeDoubtRepo)(nil)
	_ repository.ProgressRepository    = (*fakeProgressRepo)(nil)
	_ repository.FocusRepository       = (*fakeFocusRepo)(nil)
	_ repository.ProjectRepository     = (*fakeProjectRepo)(nil)
	_ repository.ResumeRepository      = (*fakeResumeRepo)(nil)
	_ repository.ApplicationRepository = (*fakeApplicationRepo)(nil)
	_ repository.BadgeRepository       = (*fakeBadgeRepo)(nil)
	_ repository.LeaderboardRepository = (*fakeLeaderboardRepo)(nil)
)
