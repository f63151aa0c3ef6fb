package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// excelEpoch é o dia zero do sistema de datas 1900 do Excel (já compensando o falso 29/02/1900)
var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

var sheetDateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"02/01/2006",
	"02/01/2006 15:04:05",
	"2/1/2006",
	"02-01-2006",
}

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseSheetDate interpreta datas vindas de planilhas: ISO, dd/mm/aaaa e números seriais do Excel.
// Retorna nil para célula vazia.
func ParseSheetDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "nan") || strings.EqualFold(value, "nat") {
		return nil, nil
	}

	for _, layout := range sheetDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			d := DateOnly(t)
			return &d, nil
		}
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial > 0 && serial < 2958466 {
		t := ExcelSerialToTime(serial)
		return &t, nil
	}

	return nil, fmt.Errorf("data inválida: %q", value)
}

// ExcelSerialToTime converte um serial do Excel para a data (sem hora)
func ExcelSerialToTime(serial float64) time.Time {
	days := math.Floor(serial)
	return excelEpoch.AddDate(0, 0, int(days))
}

// DateOnly descarta hora e fuso, mantendo ano, mês e dia
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// LastWeekFriday é a sexta-feira da semana anterior: a segunda-feira da semana
// da referência menos três dias. Numa sexta-feira, volta sete dias.
func LastWeekFriday(reference time.Time) time.Time {
	offset := (int(reference.Weekday()) + 6) % 7
	monday := DateOnly(reference).AddDate(0, 0, -offset)
	return monday.AddDate(0, 0, -3)
}
