package db

import (
  "fmt"
  "strings"

  "gorm.io/driver/postgres"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"

  "github.com/yungbote/pubshare-backend/internal/logger"
  "github.com/yungbote/pubshare-backend/internal/types"
  "github.com/yungbote/pubshare-backend/internal/utils"
)

type PostgresService struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  log.Info("Loading environment variables...")
  driver := strings.ToLower(utils.GetEnv("DB_DRIVER", "postgres", log))

  var dialector gorm.Dialector
  switch driver {
  case "sqlite":
    sqlitePath := utils.GetEnv("SQLITE_PATH", "pubshare.db", log)
    dialector = sqlite.Open(sqlitePath)
  default:
    postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
    postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
    postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
    postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
    postgresName := utils.GetEnv("POSTGRES_NAME", "pubshare", log)
    dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)
    dialector = postgres.Open(dsn)
  }

  log.Info("Connecting to database...", "driver", driver)
  db, err := gorm.Open(dialector, &gorm.Config{
    DisableForeignKeyConstraintWhenMigrating: true,
    TranslateError:                           true,
  })
  if err != nil {
    log.Error("Failed to connect to database", "error", err)
    return nil, fmt.Errorf("failed to connect to database: %w", err)
  }

  return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Auto migrating tables...")
  err := s.db.AutoMigrate(
    &types.User{},
    &types.UserToken{},
    &types.Location{},
    &types.PublicationType{},
    &types.Tag{},
    &types.Publication{},
    &types.PublicationTag{},
    &types.Vote{},
    &types.UserTag{},
  )
  if err != nil {
    s.log.Error("Auto migration failed", "error", err)
    return err
  }
  if s.db.Dialector.Name() != "postgres" {
    return nil
  }
  s.log.Info("Configuring foreign key relationships...")
  constraints := []struct {
    name string
    ddl  string
  }{
    {"fk_user_token_user_id", `
      ALTER TABLE "user_token"
      ADD CONSTRAINT "fk_user_token_user_id"
      FOREIGN KEY ("user_id")
      REFERENCES "user"("id")
      ON DELETE CASCADE
    `},
    {"fk_publication_user_id", `
      ALTER TABLE "publication"
      ADD CONSTRAINT "fk_publication_user_id"
      FOREIGN KEY ("user_id")
      REFERENCES "user"("id")
      ON DELETE CASCADE
    `},
    {"fk_publication_tag_publication_id", `
      ALTER TABLE "publication_tag"
      ADD CONSTRAINT "fk_publication_tag_publication_id"
      FOREIGN KEY ("publication_id")
      REFERENCES "publication"("id")
    `},
    {"fk_publication_tag_tag_id", `
      ALTER TABLE "publication_tag"
      ADD CONSTRAINT "fk_publication_tag_tag_id"
      FOREIGN KEY ("tag_id")
      REFERENCES "tag"("id")
    `},
    {"fk_vote_publication_id", `
      ALTER TABLE "vote"
      ADD CONSTRAINT "fk_vote_publication_id"
      FOREIGN KEY ("publication_id")
      REFERENCES "publication"("id")
    `},
    {"fk_vote_user_id", `
      ALTER TABLE "vote"
      ADD CONSTRAINT "fk_vote_user_id"
      FOREIGN KEY ("user_id")
      REFERENCES "user"("id")
      ON DELETE CASCADE
    `},
    {"fk_user_tag_user_id", `
      ALTER TABLE "user_tag"
      ADD CONSTRAINT "fk_user_tag_user_id"
      FOREIGN KEY ("user_id")
      REFERENCES "user"("id")
      ON DELETE CASCADE
    `},
  }
  for _, c := range constraints {
    var count int64
    if err := s.db.Raw(
      `SELECT COUNT(*) FROM information_schema.table_constraints WHERE constraint_name = ?`, c.name,
    ).Scan(&count).Error; err != nil {
      return fmt.Errorf("failed to check constraint %s: %w", c.name, err)
    }
    if count > 0 {
      continue
    }
    if err := s.db.Exec(c.ddl).Error; err != nil {
      return fmt.Errorf("failed to add %s: %w", c.name, err)
    }
  }
  return nil
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}
