package blooddonation

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ridwankhan/campusconnect/internal/config"
	"gorm.io/gorm"
)

type BloodDonationPlugin struct{}

func New() *BloodDonationPlugin {
	return &BloodDonationPlugin{}
}

func (p *BloodDonationPlugin) ID() string { return "blooddonation" }

func (p *BloodDonationPlugin) Models() []interface{} {
	return []interface{}{
		&DonorRecord{},
		&BloodRequest{},
	}
}

func (p *BloodDonationPlugin) RegisterRoutes(_ fiber.Router, protected fiber.Router, db *gorm.DB, _ *config.Config) {
	donorSvc := NewDonorService(db)
	requestSvc := NewRequestService(db)
	dh := NewDonorHandler(donorSvc)
	rh := NewRequestHandler(requestSvc)

	protected.Post("/donor/register", dh.Register)
	protected.Put("/donor/toggle", dh.Toggle)
	protected.Put("/donor/update", dh.Update)
	protected.Get("/donor/all", dh.List)

	protected.Post("/request/create", rh.Create)
	protected.Delete("/request/remove/:id", rh.Cancel)
	protected.Get("/request/all", rh.List)
}
