package refcache

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ricascor080/Back-Barber/internal/models"
)

type BarberSummary struct {
	Name        string   `json:"name"`
	Specialties []string `json:"specialties"`
}

type ServiceSummary struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}

type PaymentSummary struct {
	Amount  float64   `json:"amount"`
	Service string    `json:"service"`
	Date    time.Time `json:"date"`
}

// Reference sirve los resúmenes denormalizados vía el caché: en el
// primer miss hace exactamente un lookup contra la base y retiene el
// resultado.
type Reference struct {
	cache *Cache
	db    *gorm.DB
}

func NewReference(cache *Cache, db *gorm.DB) *Reference {
	return &Reference{cache: cache, db: db}
}

func (r *Reference) Barber(ctx context.Context, id uint) (*BarberSummary, error) {
	key := fmt.Sprintf("ref:barber:%d", id)
	return getOrLoadJSON(r.cache, ctx, key, func(ctx context.Context) (*BarberSummary, error) {
		var barber models.User
		if err := r.db.WithContext(ctx).
			Preload("OfferedServices").
			Where("id = ? AND role = ?", id, models.RoleBarber).
			First(&barber).Error; err != nil {
			return nil, err
		}

		specialties := make([]string, 0, len(barber.OfferedServices))
		for _, svc := range barber.OfferedServices {
			specialties = append(specialties, svc.Name)
		}

		return &BarberSummary{
			Name:        barber.Name,
			Specialties: specialties,
		}, nil
	})
}

func (r *Reference) Service(ctx context.Context, id uint) (*ServiceSummary, error) {
	key := fmt.Sprintf("ref:service:%d", id)
	return getOrLoadJSON(r.cache, ctx, key, func(ctx context.Context) (*ServiceSummary, error) {
		var svc models.Service
		if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
			return nil, err
		}
		return &ServiceSummary{
			Name:     svc.Name,
			Price:    svc.Price,
			Duration: svc.DurationMin,
		}, nil
	})
}

// InvalidateService descarta el resumen cacheado tras una edición;
// el próximo lookup recarga desde la base.
func (r *Reference) InvalidateService(ctx context.Context, id uint) {
	r.cache.Invalidate(ctx, fmt.Sprintf("ref:service:%d", id))
}

func (r *Reference) InvalidateBarber(ctx context.Context, id uint) {
	r.cache.Invalidate(ctx, fmt.Sprintf("ref:barber:%d", id))
}

func (r *Reference) Payment(ctx context.Context, id uint) (*PaymentSummary, error) {
	key := fmt.Sprintf("ref:payment:%d", id)
	return getOrLoadJSON(r.cache, ctx, key, func(ctx context.Context) (*PaymentSummary, error) {
		var p models.Payment
		if err := r.db.WithContext(ctx).
			Preload("Reservation.Service").
			First(&p, id).Error; err != nil {
			return nil, err
		}
		return &PaymentSummary{
			Amount:  p.Amount,
			Service: p.Reservation.Service.Name,
			Date:    p.CreatedAt,
		}, nil
	})
}
