package services

import (
	"context"
	"errors"
	"time"

	"greenvest/src/repositories"
	"greenvest/src/schemas"

	"github.com/jackc/pgx/v5"
)

type ProjectServiceI interface {
	GetAll(ctx context.Context, filter repositories.ProjectFilter) ([]schemas.ProjectSummary, error)
	GetBySlug(ctx context.Context, slug string) (*schemas.ProjectDetail, error)
	GetActiveOffering(ctx context.Context, projectID int64) (*schemas.OfferingResponse, error)
}

type ProjectService struct {
	projectRepo  repositories.ProjectRepository
	offeringRepo repositories.OfferingRepository
}

func NewProjectService(projectRepo repositories.ProjectRepository, offeringRepo repositories.OfferingRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo, offeringRepo: offeringRepo}
}

func (s *ProjectService) GetAll(ctx context.Context, filter repositories.ProjectFilter) ([]schemas.ProjectSummary, error) {
	projects, err := s.projectRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	summaries := make([]schemas.ProjectSummary, 0, len(projects))
	for i := range projects {
		p := &projects[i]

		investorsCount, err := s.projectRepo.GetInvestorsCount(ctx, p.ID)
		if err != nil {
			return nil, err
		}

		hasActiveOffering, err := s.hasActiveOffering(ctx, p.ID)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, schemas.NewProjectSummary(p, investorsCount, hasActiveOffering))
	}
	return summaries, nil
}

func (s *ProjectService) GetBySlug(ctx context.Context, slug string) (*schemas.ProjectDetail, error) {
	project, err := s.projectRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	investorsCount, err := s.projectRepo.GetInvestorsCount(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	hasActiveOffering, err := s.hasActiveOffering(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	return schemas.NewProjectDetail(project, investorsCount, hasActiveOffering), nil
}

func (s *ProjectService) GetActiveOffering(ctx context.Context, projectID int64) (*schemas.OfferingResponse, error) {
	offering, err := s.offeringRepo.GetActiveByProjectID(ctx, projectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOfferingNotFound
		}
		return nil, err
	}
	return schemas.NewOfferingResponse(offering, time.Now()), nil
}

func (s *ProjectService) hasActiveOffering(ctx context.Context, projectID int64) (bool, error) {
	_, err := s.offeringRepo.GetActiveByProjectID(ctx, projectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
