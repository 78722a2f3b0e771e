package repository

import (
	"context"

	"studycafe/pkg/model"
)

const lockerPassColumns = 3

type LockerPassRepository interface {
	FindAll(ctx context.Context) ([]model.LockerPass, error)
}

type csvLockerPassRepository struct {
	path string
}

// NewCSVLockerPassRepository reads rows of "type,duration,price".
func NewCSVLockerPassRepository(path string) LockerPassRepository {
	return &csvLockerPassRepository{path: path}
}

func (r *csvLockerPassRepository) FindAll(ctx context.Context) ([]model.LockerPass, error) {
	return readCSV(ctx, r.path, lockerPassColumns, parseLockerPass)
}

func parseLockerPass(record []string) (model.LockerPass, error) {
	passType, err := parsePassType(record[0])
	if err != nil {
		return model.LockerPass{}, err
	}
	duration, err := parseInt("duration", record[1])
	if err != nil {
		return model.LockerPass{}, err
	}
	price, err := parseInt("price", record[2])
	if err != nil {
		return model.LockerPass{}, err
	}

	return model.LockerPass{
		Type:     passType,
		Duration: duration,
		Price:    price,
	}, nil
}
