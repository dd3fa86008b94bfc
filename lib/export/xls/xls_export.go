package xlsexport

import (
	"bytes"
	"company-settings-backend/models"
	operationsapimodels "company-settings-backend/models/api/operations"
	"encoding/json"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	operationsSheet = "Операции"
	matrixSheet     = "Матрица"

	cellEnabled  = "вкл"
	cellDisabled = "выкл"
)

type Provider interface {
	ExportOperations(list []operationsapimodels.OperationView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var operationHeaders = []string{"Тип", "Название", "Описание", "Включена", "Действий включено", "Конфиг"}

// ExportOperations два листа: список операций и матрица действие × операция
func (i impl) ExportOperations(list []operationsapimodels.OperationView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	if err := f.SetSheetName("Sheet1", operationsSheet); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа в xlsx")
	}
	row, err := writeHeader(f, operationsSheet, 0, operationHeaders, 25)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if _, err = writeOperationData(f, operationsSheet, list, row); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования таблицы операций в xlsx")
	}
	if _, err = f.NewSheet(matrixSheet); err != nil {
		return nil, errors.Wrap(err, "ошибка создания листа в xlsx")
	}
	if err = writeMatrix(f, matrixSheet, list); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования матрицы действий в xlsx")
	}
	return f.WriteToBuffer()
}

func writeOperationData(f *excelize.File, sheet string, list []operationsapimodels.OperationView, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(operationHeaders), row+len(list), "left"); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		enabledActions := 0
		for _, action := range item.Actions {
			if action.Enabled {
				enabledActions++
			}
		}
		config, err := json.Marshal(item.Config)
		if err != nil {
			return row, err
		}
		values := []interface{}{
			string(item.Type),
			item.Name,
			item.Description,
			enabledLabel(item.Enabled),
			enabledActions,
			string(config),
		}
		for idx, value := range values {
			if err = writeColumn(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}

// writeMatrix строки - типы действий, колонки - операции. Пустая ячейка: действие к операции не привязано
func writeMatrix(f *excelize.File, sheet string, list []operationsapimodels.OperationView) error {
	headers := []string{"Действие"}
	for _, item := range list {
		headers = append(headers, item.Name)
	}
	row, err := writeHeader(f, sheet, 0, headers, 22)
	if err != nil {
		return err
	}
	if err = applyDataCellStyle(f, sheet, 1, row+1, 1, row+len(models.ActionTypes), "left"); err != nil {
		return err
	}
	if len(list) != 0 {
		if err = applyDataCellStyle(f, sheet, 2, row+1, len(headers), row+len(models.ActionTypes), "center"); err != nil {
			return err
		}
	}
	for _, actionType := range models.ActionTypes {
		row++
		if err = writeColumn(f, sheet, 1, row, string(actionType)); err != nil {
			return err
		}
		for idx, item := range list {
			for _, action := range item.Actions {
				if action.Type != actionType {
					continue
				}
				if err = writeColumn(f, sheet, idx+2, row, enabledLabel(action.Enabled)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func enabledLabel(enabled bool) string {
	if enabled {
		return cellEnabled
	}
	return cellDisabled
}
