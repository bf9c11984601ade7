package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/FADHEEL1234/Online-Medical/apiclient"
	"github.com/FADHEEL1234/Online-Medical/models"
)

// DoctorService is a typed wrapper over the doctor endpoints. Create,
// Update and Delete are staff operations; the backend enforces that.
type DoctorService struct {
	API *apiclient.Client
}

func (s *DoctorService) List(ctx context.Context, sid string) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := s.API.Do(ctx, sid, http.MethodGet, "/doctors/", nil, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (s *DoctorService) Get(ctx context.Context, sid string, id int) (models.Doctor, error) {
	var doctor models.Doctor
	err := s.API.Do(ctx, sid, http.MethodGet, fmt.Sprintf("/doctors/%d/", id), nil, &doctor)
	return doctor, err
}

func (s *DoctorService) Create(ctx context.Context, sid string, doctor models.Doctor) (models.Doctor, error) {
	var created models.Doctor
	err := s.API.Do(ctx, sid, http.MethodPost, "/doctors/create/", doctor, &created)
	return created, err
}

func (s *DoctorService) Update(ctx context.Context, sid string, id int, patch models.DoctorUpdate) (models.Doctor, error) {
	var updated models.Doctor
	err := s.API.Do(ctx, sid, http.MethodPatch, fmt.Sprintf("/doctors/%d/", id), patch, &updated)
	return updated, err
}

func (s *DoctorService) Delete(ctx context.Context, sid string, id int) error {
	return s.API.Do(ctx, sid, http.MethodDelete, fmt.Sprintf("/doctors/%d/", id), nil, nil)
}
