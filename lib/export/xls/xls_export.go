package xlsexport

import (
	"bytes"
	"fmt"

	dbmodels "academy-apply-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportApplicationList(list []dbmodels.Application) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicationHeaders = []string{"Aday", "İletişim", "İlan", "Temel Alan", "Dil Sınavı", "Dil Puanı", "Toplam Puan", "Başvuru Tarihi", "Durum", "Jüri Sonucu"}

func (i impl) ExportApplicationList(list []dbmodels.Application) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, applicationHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		row, err = writeApplicationData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data rows")
		}
	}
	f.SetSheetName(sheet, "Başvurular")
	return f.WriteToBuffer()
}

func writeApplicationData(f *excelize.File, sheet string, list []dbmodels.Application, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicationHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Aday"
		col := 1
		if item.Candidate != nil {
			if err := writeColumn(f, sheet, col, row, item.Candidate.GetFullName()); err != nil {
				return row, err
			}
		}

		// "İletişim"
		col++
		if item.Candidate != nil {
			if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v", item.Candidate.PhoneNumber, item.Candidate.Email)); err != nil {
				return row, err
			}
		}

		// "İlan"
		col++
		if item.Posting != nil {
			if err := writeColumn(f, sheet, col, row, item.Posting.Title); err != nil {
				return row, err
			}
		}

		// "Temel Alan"
		col++
		if err := writeColumn(f, sheet, col, row, item.FieldGroup.ToHuman()); err != nil {
			return row, err
		}

		// "Dil Sınavı"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.LanguageExam)); err != nil {
			return row, err
		}

		// "Dil Puanı"
		col++
		if err := writeColumn(f, sheet, col, row, item.LanguageScore); err != nil {
			return row, err
		}

		// "Toplam Puan"
		col++
		if err := writeColumn(f, sheet, col, row, item.TotalScore); err != nil {
			return row, err
		}

		// "Başvuru Tarihi"
		col++
		if !item.CreatedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		// "Durum"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}

		// "Jüri Sonucu"
		col++
		if item.HasFinalDecision() {
			if err := writeColumn(f, sheet, col, row, item.FinalExplanation); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
