package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"pptgenie-backend/internal/config"
	infraCache "pptgenie-backend/internal/infrastructure/cache"
	"pptgenie-backend/internal/infrastructure/database"
	"pptgenie-backend/pkg/cache"
	"pptgenie-backend/pkg/jwt"

	// Presentation domain imports
	"pptgenie-backend/internal/domains/presentation/generator"
	presentationHandler "pptgenie-backend/internal/domains/presentation/handler"
	presentationRepo "pptgenie-backend/internal/domains/presentation/repository"
	presentationService "pptgenie-backend/internal/domains/presentation/service"

	// User domain imports
	"pptgenie-backend/internal/domains/user"
	userHandler "pptgenie-backend/internal/domains/user/handler"
	userRepo "pptgenie-backend/internal/domains/user/repository"
	userService "pptgenie-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application.
// It is the root of the dependency graph.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	// Shared across all domains, singleton for the app lifetime.

	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	UserRepo         user.Repository
	PresentationRepo presentationRepo.Repository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	UserService         user.Service
	PresentationService presentationService.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	UserHandler         *userHandler.UserHandler
	PresentationHandler *presentationHandler.PresentationHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the whole dependency graph.
//
// Initialization order matters:
// 1. Config (depends on nothing)
// 2. Infrastructure (DB, Cache) - depends on Config
// 3. Repositories - depend on Infrastructure
// 4. Services - depend on Repositories
// 5. Handlers - depend on Services
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// Run embedded schema migrations before anything touches the tables.
	log.Println("📜 Running database migrations...")
	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("✅ Migrations up to date")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Connect method is not part of the Cache interface.
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Redis failure is non-critical: list caching and login
			// throttling degrade, the API keeps working.
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}

	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// ========================================
	// STEP 4: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")

	if err := c.initRepositories(); err != nil {
		return nil, fmt.Errorf("failed to init repositories: %w", err)
	}
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 5: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")

	if err := c.initServices(); err != nil {
		return nil, fmt.Errorf("failed to init services: %w", err)
	}
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 6: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")

	if err := c.initHandlers(); err != nil {
		return nil, fmt.Errorf("failed to init handlers: %w", err)
	}
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() error {
	pool := c.DB.Pool

	// ----------------------------------------
	// USER REPOSITORY
	// ----------------------------------------
	c.UserRepo = userRepo.NewPostgresRepository(pool)

	// ----------------------------------------
	// PRESENTATION REPOSITORY
	// ----------------------------------------
	c.PresentationRepo = presentationRepo.NewPostgresRepository(pool)

	return nil
}

func (c *Container) initServices() error {
	// ----------------------------------------
	// USER SERVICE
	// ----------------------------------------
	c.UserService = userService.NewUserService(
		c.UserRepo,
		c.JWTManager,
		c.Cache,
	)

	// ----------------------------------------
	// PRESENTATION SERVICE
	// ----------------------------------------
	// The template generator is the only deck source for now; swap it
	// here when a model-backed generator lands.
	c.PresentationService = presentationService.NewPresentationService(
		c.PresentationRepo,
		generator.NewTemplateGenerator(),
		c.Cache,
	)

	return nil
}

func (c *Container) initHandlers() error {
	// ----------------------------------------
	// USER HANDLER
	// ----------------------------------------
	c.UserHandler = userHandler.NewUserHandler(c.UserService)

	// ----------------------------------------
	// PRESENTATION HANDLER
	// ----------------------------------------
	c.PresentationHandler = presentationHandler.NewPresentationHandler(c.PresentationService)

	return nil
}

// ========================================
// HELPER METHODS
// ========================================

// Cleanup releases container resources during graceful shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			} else {
				log.Println("✅ Redis connections closed")
			}
		}
	}

	log.Println("✅ Container cleanup completed")
}
