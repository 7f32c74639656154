package usecase

import (
	"context"
	"net/http"
	"strings"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

type ReviewUsecase struct {
	reviewRepo  repo.ReviewRepository
	productRepo repo.ProductRepository
}

func NewReviewUsecase(reviewRepo repo.ReviewRepository, productRepo repo.ProductRepository) *ReviewUsecase {
	return &ReviewUsecase{reviewRepo: reviewRepo, productRepo: productRepo}
}

type ReviewInput struct {
	Rating  int
	Comment string
}

type ReviewListOutput struct {
	Items         []model.Review `json:"items"`
	AverageRating float64        `json:"average_rating"`
	Count         int64          `json:"count"`
}

func (u *ReviewUsecase) ListByProduct(ctx context.Context, productID int64) (ReviewListOutput, error) {
	if productID <= 0 {
		return ReviewListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return ReviewListOutput{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return ReviewListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.reviewRepo.ListByProductID(ctx, productID)
	if err != nil {
		return ReviewListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	avg, count, err := u.reviewRepo.AggregateByProductID(ctx, productID)
	if err != nil {
		return ReviewListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ReviewListOutput{Items: items, AverageRating: avg, Count: count}, nil
}

// Create は1ユーザー1商品1件。2件目は409。
func (u *ReviewUsecase) Create(ctx context.Context, userID int64, productID int64, in ReviewInput) (model.Review, error) {
	if userID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "rating must be 1-5")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Review{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "product is not available")
	}

	created, err := u.reviewRepo.Create(ctx, model.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
	})
	if err == repo.ErrConflict {
		return model.Review{}, NewHTTPError(http.StatusConflict, "review already exists")
	}
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *ReviewUsecase) Update(ctx context.Context, userID int64, reviewID int64, in ReviewInput) (model.Review, error) {
	if userID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if reviewID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "rating must be 1-5")
	}

	rv, err := u.reviewRepo.FindByID(ctx, reviewID)
	if err == repo.ErrNotFound {
		return model.Review{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if rv.UserID != userID {
		return model.Review{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	rv.Rating = in.Rating
	rv.Comment = strings.TrimSpace(in.Comment)

	if err := u.reviewRepo.Update(ctx, rv); err != nil {
		if err == repo.ErrNotFound {
			return model.Review{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return rv, nil
}

// 本人または管理者のみ削除可
func (u *ReviewUsecase) Delete(ctx context.Context, userID int64, role model.Role, reviewID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if reviewID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	rv, err := u.reviewRepo.FindByID(ctx, reviewID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if rv.UserID != userID && role != model.RoleAdmin {
		return NewHTTPError(http.StatusForbidden, "forbidden")
	}

	if err := u.reviewRepo.Delete(ctx, reviewID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
