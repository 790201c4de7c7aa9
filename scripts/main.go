package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"pumpsizer/model"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

const batchSize = 400

// Imports pipe material workbooks into the catalog table. Every xlsx in the
// directory is read; expected columns are name, roughness (mm),
// Hazen-Williams C, friction model and description. Names already in the
// catalog are left untouched.
func main() {
	host := flag.String("h", "", "mysql host")
	port := flag.String("p", "", "mysql port")
	user := flag.String("u", "root", "mysql user")
	password := flag.String("a", "", "mysql password")
	fileDir := flag.String("d", "", "directory with material workbooks")
	flag.Parse()

	if *host == "" || *port == "" || *password == "" {
		flag.Usage()
		return
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/pumpsizer?charset=utf8mb4&parseTime=True&loc=Local", *user, *password, *host, *port)

	var err error
	db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold: time.Second,
				LogLevel:      logger.Silent,
				Colorful:      false,
			},
		),
	})
	if err != nil {
		fmt.Printf("connect mysql failed: %v\n", err)
		return
	}

	files, err := os.ReadDir(*fileDir)
	if err != nil {
		fmt.Printf("read directory failed: %v\n", err)
		return
	}

	totalImported := 0
	for _, file := range files {
		now := time.Now()
		if file.IsDir() || !strings.HasSuffix(strings.ToLower(file.Name()), ".xlsx") {
			continue
		}

		filePath := filepath.Join(*fileDir, file.Name())
		imported, err := importMaterials(filePath)
		if err != nil {
			fmt.Printf("import %s failed: %v\n", filePath, err)
			continue
		}
		fmt.Printf("imported %s, %d materials, %.2fs\n", filePath, imported, time.Since(now).Seconds())
		totalImported += imported
	}

	fmt.Printf("\nimported %d materials in total\n", totalImported)
}

func importMaterials(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	xlsx, err := excelize.OpenReader(f)
	if err != nil {
		return 0, err
	}
	defer xlsx.Close()

	rows, err := xlsx.GetRows(xlsx.GetSheetName(0))
	if err != nil {
		return 0, err
	}
	if len(rows) < 2 {
		return 0, errors.New("workbook has no data rows")
	}

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var (
		imported int
		batch    []model.PipeMaterial
	)
	for rowNum, row := range rows[1:] {
		material, err := parseMaterialRow(row)
		if err != nil {
			fmt.Printf("row %d skipped: %v\n", rowNum+2, err)
			continue
		}
		batch = append(batch, material)

		if len(batch) >= batchSize {
			if err := tx.Clauses(clause.Insert{Modifier: "IGNORE"}).Create(&batch).Error; err != nil {
				tx.Rollback()
				return imported, fmt.Errorf("insert batch %d: %v", imported/batchSize+1, err)
			}
			imported += len(batch)
			batch = nil
		}
	}

	if len(batch) > 0 {
		if err := tx.Clauses(clause.Insert{Modifier: "IGNORE"}).Create(&batch).Error; err != nil {
			tx.Rollback()
			return imported, fmt.Errorf("insert last batch: %v", err)
		}
		imported += len(batch)
	}

	if err := tx.Commit().Error; err != nil {
		return imported, fmt.Errorf("commit failed: %v", err)
	}
	return imported, nil
}

// parseMaterialRow maps one sheet row onto a catalog entry. Roughness comes
// in as mm and is stored in meters.
func parseMaterialRow(row []string) (model.PipeMaterial, error) {
	var m model.PipeMaterial
	if len(row) < 2 {
		return m, errors.New("not enough columns")
	}

	m.Name = strings.ToLower(strings.TrimSpace(row[0]))
	if m.Name == "" {
		return m, errors.New("empty material name")
	}

	roughnessMM, err := cast.ToFloat64E(strings.TrimSpace(row[1]))
	if err != nil {
		return m, fmt.Errorf("roughness: %v", err)
	}
	if roughnessMM < 0 {
		return m, errors.New("negative roughness")
	}
	m.Roughness = roughnessMM / 1000

	if len(row) > 2 && strings.TrimSpace(row[2]) != "" {
		c, err := cast.ToFloat64E(strings.TrimSpace(row[2]))
		if err != nil {
			return m, fmt.Errorf("hazen-williams c: %v", err)
		}
		m.HazenWilliamsC = c
	}

	m.Model = "colebrook"
	if len(row) > 3 && strings.TrimSpace(row[3]) != "" {
		m.Model = strings.ToLower(strings.TrimSpace(row[3]))
	}
	switch m.Model {
	case "colebrook":
	case "hazen-williams":
		if m.HazenWilliamsC <= 0 {
			return m, errors.New("hazen-williams model needs a positive C")
		}
	default:
		return m, fmt.Errorf("unknown friction model %q", m.Model)
	}

	if len(row) > 4 {
		m.Description = strings.TrimSpace(row[4])
	}
	return m, nil
}
