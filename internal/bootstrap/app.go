package bootstrap

import (
	"os"

	"github.com/placementhub/placement-mentor-hub/internal/config"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/placementhub/placement-mentor-hub/pkg/database"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// App bundles the process-wide dependencies built at startup.
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
}

// NewApp loads configuration, connects the stores and migrates the
// schema. An empty env keeps whatever APP_ENV is already set.
func NewApp(env string) (*App, error) {
	if env != "" {
		os.Setenv("APP_ENV", env)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	db := database.Connect()
	if err := Migrate(db); err != nil {
		return nil, err
	}

	return &App{
		Config:      cfg,
		DB:          db,
		RedisClient: database.ConnectRedis(),
	}, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Trainer{},
		&model.Student{},
		&model.TrainerStudentRelation{},
		&model.SkillProgress{},
		&model.Doubt{},
		&model.Project{},
		&model.ProjectLog{},
		&model.FocusSession{},
		&model.Resume{},
		&model.ATSScan{},
		&model.JobApplication{},
		&model.Badge{},
	)
}
