package bootstrap

import (
	"fmt"
	"log"
	"time"

	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/placementhub/placement-mentor-hub/pkg/ats"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDemoData populates the database with a demo dataset: one admin,
// three trainers, ten students and a spread of relations, progress,
// doubts, projects, focus sessions, resumes and applications. It does
// not guard against existing data: re-running without a reset fails on
// the users.email unique index instead of silently duplicating rows.
func SeedDemoData(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	password := string(hash)

	return db.Transaction(func(tx *gorm.DB) error {
		college := "Test University"
		adminYear := 4
		admin := &model.User{
			Name:         "Admin User",
			Email:        "admin@test.com",
			PasswordHash: password,
			Role:         model.RoleAdmin,
			College:      &college,
			YearOfStudy:  &adminYear,
		}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}

		trainers, err := seedTrainers(tx, password)
		if err != nil {
			return err
		}

		students, err := seedStudents(tx, password)
		if err != nil {
			return err
		}

		relations, err := seedRelations(tx, trainers, students)
		if err != nil {
			return err
		}

		if err := seedSkillProgress(tx, students); err != nil {
			return err
		}
		if err := seedDoubts(tx, relations); err != nil {
			return err
		}
		if err := seedProjects(tx, students); err != nil {
			return err
		}
		if err := seedFocusSessions(tx, students); err != nil {
			return err
		}
		if err := seedResumes(tx, students); err != nil {
			return err
		}
		if err := seedApplications(tx, students); err != nil {
			return err
		}
		if err := seedBadges(tx, students); err != nil {
			return err
		}

		log.Println("demo seed completed")
		return nil
	})
}

// SeedDemoDataIfEmpty seeds only when no users exist yet. This is the
// development auto-seed path; an explicit seed request should call
// SeedDemoData directly so collisions surface.
func SeedDemoDataIfEmpty(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("users already exist, skipping demo seed")
		return nil
	}

	return SeedDemoData(db)
}

func seedTrainers(tx *gorm.DB, password string) ([]*model.Trainer, error) {
	data := []struct {
		name, email, bio, skills string
		price                    int
		rating                   float64
	}{
		{"Rahul Singh", "trainer1@test.com",
			"Senior SDE at Tech Company. Specializing in DSA and System Design.",
			"Python, JavaScript, DSA, System Design, Backend", 0, 4.5},
		{"Priya Sharma", "trainer2@test.com",
			"Full Stack Developer with 5+ years experience.",
			"React, Node.js, MongoDB, AWS, Web Development", 499, 4.3},
		{"Amit Kumar", "trainer3@test.com",
			"Data Science Expert and AI Enthusiast.",
			"Python, Machine Learning, Data Science, Statistics", 299, 4.3},
	}

	trainers := make([]*model.Trainer, 0, len(data))
	for _, t := range data {
		user := &model.User{
			Name:         t.name,
			Email:        t.email,
			PasswordHash: password,
			Role:         model.RoleTrainer,
		}
		if err := tx.Create(user).Error; err != nil {
			return nil, err
		}

		trainer := &model.Trainer{
			UserID:                user.ID,
			PricePerMonth:         t.price,
			Bio:                   t.bio,
			Skills:                t.skills,
			IsActive:              true,
			RatingAverage:         t.rating,
			RatingCount:           15,
			TotalStudentsAssisted: 8,
		}
		if err := tx.Create(trainer).Error; err != nil {
			return nil, err
		}
		trainer.User = user
		trainers = append(trainers, trainer)
	}

	return trainers, nil
}

func seedStudents(tx *gorm.DB, password string) ([]*model.Student, error) {
	names := []string{
		"John Doe", "Sarah Johnson", "Mike Chen", "Akshay Patel",
		"Neha Gupta", "Arjun Verma", "Priya Singh", "Rohan Kumar",
		"Anjali Reddy", "Vishal Chopra",
	}

	college := "Tech University"
	students := make([]*model.Student, 0, len(names))
	for i, name := range names {
		year := 3 + (i % 2)
		user := &model.User{
			Name:         name,
			Email:        fmt.Sprintf("student%d@test.com", i+1),
			PasswordHash: password,
			Role:         model.RoleStudent,
			College:      &college,
			YearOfStudy:  &year,
		}
		if err := tx.Create(user).Error; err != nil {
			return nil, err
		}

		goal := "SDE at FAANG"
		track := "Backend"
		if i%2 != 0 {
			goal = "Backend Engineer"
			track = "Full Stack"
		}

		student := &model.Student{
			UserID:                 user.ID,
			HasGoalClarity:         true,
			GoalTitle:              &goal,
			SelectedTrack:          &track,
			LeetcodeRating:         1200 + i*100,
			LeetcodeProblemsSolved: 50 + i*10,
			LeetcodeDailyStreak:    5 + (i % 7),
			TotalCodeHours:         80 + i*20,
			ConsistencyScore:       75 + i*2,
			DSALevel:               3 + (i % 3),
			DBMSLevel:              3 + (i % 2),
			OSLevel:                2 + (i % 3),
			CNLevel:                2 + (i % 2),
			SystemDesignLevel:      1 + (i % 3),
			SoftSkillsLevel:        3 + (i % 3),
			AptitudeLevel:          3 + (i % 2),
		}
		if err := tx.Create(student).Error; err != nil {
			return nil, err
		}
		student.User = user
		students = append(students, student)
	}

	return students, nil
}

func seedRelations(tx *gorm.DB, trainers []*model.Trainer, students []*model.Student) ([]*model.TrainerStudentRelation, error) {
	relations := make([]*model.TrainerStudentRelation, 0, 8)
	for i, student := range students[:8] {
		trainer := trainers[i%len(trainers)]
		relation := &model.TrainerStudentRelation{
			TrainerID:               trainer.ID,
			StudentID:               student.ID,
			Status:                  model.RelationActive,
			StartedAt:               time.Now().UTC().AddDate(0, 0, -30),
			TotalDoubtsAsked:        5 + i,
			TotalDoubtsAnswered:     4 + i,
			StudentRatingForTrainer: 4.5 - float64(i%2)*0.5,
		}
		if err := tx.Create(relation).Error; err != nil {
			return nil, err
		}
		relation.Trainer = trainer
		relation.Student = student
		relations = append(relations, relation)
	}

	return relations, nil
}

func seedSkillProgress(tx *gorm.DB, students []*model.Student) error {
	topics := []struct{ skill, topic string }{
		{"DSA", "Arrays & Strings"},
		{"DSA", "Trees & Graphs"},
		{"DBMS", "SQL Queries"},
		{"OS", "Process Management"},
		{"System Design", "Scalability"},
	}

	for i, student := range students {
		for _, t := range topics {
			progress := &model.SkillProgress{
				StudentID:        student.ID,
				SkillName:        t.skill,
				TopicName:        t.topic,
				ProblemCount:     20 + (i % 10),
				DoneProblemCount: 10 + (i % 5),
			}
			if err := tx.Create(progress).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func seedDoubts(tx *gorm.DB, relations []*model.TrainerStudentRelation) error {
	for i, relation := range relations[:5] {
		doubt := &model.Doubt{
			FromUserID: relation.Student.UserID,
			ToUserID:   relation.Trainer.UserID,
			RelationID: relation.ID,
			Text:       fmt.Sprintf("How do I solve problem %d? I'm stuck on the edge case.", 10+i),
			Type:       model.DoubtTypeDoubt,
		}
		if err := tx.Create(doubt).Error; err != nil {
			return err
		}
	}

	return nil
}

func seedProjects(tx *gorm.DB, students []*model.Student) error {
	now := time.Now().UTC()
	for i, student := range students {
		title := fmt.Sprintf("Project %d: E-Commerce Platform", i+1)
		if i%2 != 0 {
			title = fmt.Sprintf("Project %d: Chat Application", i+1)
		}
		target := now.AddDate(0, 0, 30)

		project := &model.Project{
			StudentID:   student.ID,
			Title:       title,
			Description: "Building a scalable web application",
			TechStack:   "React, Node.js, MongoDB, AWS",
			TargetDate:  &target,
		}
		if err := tx.Create(project).Error; err != nil {
			return err
		}

		for day := 0; day < 5; day++ {
			entry := &model.ProjectLog{
				ProjectID:  project.ID,
				Date:       now.AddDate(0, 0, -(4 - day)).Truncate(24 * time.Hour),
				Summary:    fmt.Sprintf("Day %d: Completed feature %d", day+1, day+1),
				HoursSpent: float64(2 + day%3),
			}
			if err := tx.Create(entry).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func seedFocusSessions(tx *gorm.DB, students []*model.Student) error {
	now := time.Now().UTC()
	labels := []string{"DSA", "DBMS", "Projects"}

	for _, student := range students {
		for day := 0; day < 3; day++ {
			startedAt := now.AddDate(0, 0, -day)
			endedAt := startedAt.Add(2 * time.Hour)
			session := &model.FocusSession{
				StudentID:       student.ID,
				StartedAt:       startedAt,
				EndedAt:         &endedAt,
				DurationMinutes: 120,
				Label:           labels[day%len(labels)],
			}
			if err := tx.Create(session).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func seedResumes(tx *gorm.DB, students []*model.Student) error {
	scorer := ats.NewKeywordScorer()
	jobDescription := "Looking for an experienced Python and JavaScript developer with React, SQL and AWS skills."

	for i, student := range students[:5] {
		rawText := fmt.Sprintf(`%s
Email: %s

SUMMARY
Passionate developer with strong DSA skills and %d hours of coding experience.

SKILLS
Languages: Python, JavaScript, Java
Frameworks: React, Node.js, Django
Databases: SQL, MongoDB, PostgreSQL
Tools: Git, Docker, AWS

EXPERIENCE
Junior Developer Intern - Tech Company
- Developed web features using React
- Solved 50+ DSA problems

EDUCATION
B.Tech in Computer Science

PROJECTS
E-Commerce Platform - React, Node.js, MongoDB
Chat Application - Socket.io, Express

ACHIEVEMENTS
Solved %d LeetCode problems
%d-day coding streak
`, student.User.Name, student.User.Email, student.TotalCodeHours,
			student.LeetcodeProblemsSolved, student.LeetcodeDailyStreak)

		resume := &model.Resume{
			StudentID:    student.ID,
			Title:        fmt.Sprintf("Resume v%d", i+1),
			RawText:      rawText,
			TemplateType: "simple",
		}
		if err := tx.Create(resume).Error; err != nil {
			return err
		}

		result := scorer.Score(resume.RawText, jobDescription)
		scan := &model.ATSScan{
			ResumeID:           resume.ID,
			JobTitle:           "Senior Software Engineer",
			JobDescriptionText: jobDescription,
			ScoreOverall:       result.ScoreOverall,
			ScoreHardSkills:    result.ScoreHardSkills,
			ScoreSoftSkills:    result.ScoreSoftSkills,
			ScoreFormat:        result.ScoreFormat,
			MissingKeywords:    result.MissingKeywords,
			Suggestions:        result.Suggestions,
		}
		if err := tx.Create(scan).Error; err != nil {
			return err
		}
	}

	return nil
}

func seedApplications(tx *gorm.DB, students []*model.Student) error {
	companies := []struct{ company, role string }{
		{"Google", "Software Engineer"},
		{"Amazon", "Backend Engineer"},
		{"Microsoft", "Full Stack Developer"},
		{"Apple", "iOS Developer"},
		{"Flipkart", "SDE"},
		{"Swiggy", "Backend Engineer"},
	}
	statuses := []model.ApplicationStatus{model.StatusToApply, model.StatusApplied, model.StatusOnlineTest}
	now := time.Now().UTC()

	for i, student := range students[:6] {
		for j := 0; j < 2; j++ {
			pick := companies[(i+j)%len(companies)]
			status := statuses[j%len(statuses)]
			score := 75 + i*2

			application := &model.JobApplication{
				StudentID:       student.ID,
				Company:         pick.company,
				Role:            pick.role,
				Location:        "Bangalore, India",
				Status:          status,
				ATSScoreAtApply: &score,
			}
			if status != model.StatusToApply {
				applied := now.AddDate(0, 0, -j*5)
				application.AppliedDate = &applied
			}
			if err := tx.Create(application).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func seedBadges(tx *gorm.DB, students []*model.Student) error {
	badgeData := []struct{ key, title, description string }{
		{"leet_1", "First Problem", "Solved your first LeetCode problem"},
		{"leet_50", "Halfway There", "Solved 50 LeetCode problems"},
		{"streak_3", "3-Day Streak", "Maintained 3-day coding streak"},
		{"streak_7", "Week Warrior", "Maintained 7-day coding streak"},
	}
	now := time.Now().UTC()

	for i, student := range students[:5] {
		limit := 2 + (i % 2)
		if limit > len(badgeData) {
			limit = len(badgeData)
		}
		for j := 0; j < limit; j++ {
			badge := &model.Badge{
				StudentID:   student.ID,
				BadgeKey:    badgeData[j].key,
				Title:       badgeData[j].title,
				Description: badgeData[j].description,
				UnlockedAt:  now.AddDate(0, 0, -(10 - i)),
			}
			if err := tx.Create(badge).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
