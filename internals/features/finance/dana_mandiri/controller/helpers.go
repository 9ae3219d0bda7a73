package controller

import (
	"time"

	"lingkunganku_backend/internals/configs"
	"lingkunganku_backend/internals/features/finance/rekap"
)

func rekapValidateTahun(tahun int) error {
	return rekap.ValidateTahun(tahun, time.Now(), configs.DuesYearBack, configs.DuesYearForward)
}
