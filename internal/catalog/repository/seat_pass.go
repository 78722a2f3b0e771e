package repository

import (
	"context"

	"studycafe/pkg/model"
)

const seatPassColumns = 4

type SeatPassRepository interface {
	FindAll(ctx context.Context) ([]model.SeatPass, error)
}

type csvSeatPassRepository struct {
	path string
}

// NewCSVSeatPassRepository reads rows of "type,duration,price,discountRate".
func NewCSVSeatPassRepository(path string) SeatPassRepository {
	return &csvSeatPassRepository{path: path}
}

func (r *csvSeatPassRepository) FindAll(ctx context.Context) ([]model.SeatPass, error) {
	return readCSV(ctx, r.path, seatPassColumns, parseSeatPass)
}

func parseSeatPass(record []string) (model.SeatPass, error) {
	passType, err := parsePassType(record[0])
	if err != nil {
		return model.SeatPass{}, err
	}
	duration, err := parseInt("duration", record[1])
	if err != nil {
		return model.SeatPass{}, err
	}
	price, err := parseInt("price", record[2])
	if err != nil {
		return model.SeatPass{}, err
	}
	discountRate, err := parseFloat("discountRate", record[3])
	if err != nil {
		return model.SeatPass{}, err
	}

	return model.SeatPass{
		Type:         passType,
		Duration:     duration,
		Price:        price,
		DiscountRate: discountRate,
	}, nil
}
