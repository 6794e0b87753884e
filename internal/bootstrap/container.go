package bootstrap

import (
	"compliance-audit-be/internal/config"
	"compliance-audit-be/internal/constant"
	"compliance-audit-be/internal/controller"
	"compliance-audit-be/internal/pkg/logger"
	"compliance-audit-be/internal/repository/unitofwork"
	"compliance-audit-be/internal/service"
	"compliance-audit-be/pkg/extractor"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ComplianceController controller.IComplianceController
	RegulationController controller.IRegulationController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Services shared with the CLI commands
	IngestionService  service.IIngestionService
	RuleSeederService service.IRuleSeederService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Messaging.RegulationIngestedTopic, pubSub)
	ruleSeederService := service.NewRuleSeederService(uowFactory, sysLogger)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Messaging.RegulationIngestedTopic,
		ruleSeederService,
		constant.SeedRuleMappings,
		sysLogger,
	)

	matcherService := service.NewMatcherService(uowFactory)
	ingestionService := service.NewIngestionService(
		uowFactory,
		publisherService,
		extractor.Extract,
		sysLogger,
	)

	// 4. Controllers
	return &Container{
		ComplianceController: controller.NewComplianceController(matcherService),
		RegulationController: controller.NewRegulationController(matcherService, ingestionService),

		ConsumerService: consumerService,

		IngestionService:  ingestionService,
		RuleSeederService: ruleSeederService,

		Logger: sysLogger,
	}
}
