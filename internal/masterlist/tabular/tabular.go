// Package tabular 负责导入文件的解析与导出文件的生成。
// CSV与xlsx都解析成以表头为键的行序列，后续的类型转换和校验
// 由validate包完成，这里只做结构层面的读取。
package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DefaultMaxUploadBytes 导入文件大小上限
const DefaultMaxUploadBytes = 10 << 20 // 10 MiB

// 结构性解析错误：整个文件直接拒绝，不进入逐行处理
var (
	ErrEmptyFile    = errors.New("file is empty")
	ErrFileTooLarge = errors.New("file exceeds size limit")
	ErrUnreadable   = errors.New("file is not readable")
)

// Row 一行原始数据，键为规范化(去空白、小写)后的表头
type Row map[string]string

// Get 取字段值并去除首尾空白
func (r Row) Get(key string) string {
	return strings.TrimSpace(r[key])
}

// Empty 整行是否为空
func (r Row) Empty() bool {
	for _, v := range r {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// RowError 行级错误，Row为文件中的行号(表头占第1行，首条数据行为2)
type RowError struct {
	Row        int    `json:"row"`
	Field      string `json:"field,omitempty"`
	Value      string `json:"value,omitempty"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Parse 按文件名后缀分发到CSV或xlsx解析
func Parse(filename string, r io.Reader, maxBytes int64) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return ParseXLSX(r, maxBytes)
	default:
		return ParseCSV(r, maxBytes)
	}
}

// ParseCSV 解析CSV为行序列。表头行缺失按空文件处理，
// 全空的数据行直接跳过。
func ParseCSV(r io.Reader, maxBytes int64) ([]Row, error) {
	data, err := readCapped(r, maxBytes)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	keys := normalizeHeader(header)

	var rows []Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
		}
		row := recordToRow(keys, rec)
		if row.Empty() {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ParseXLSX 解析xlsx首个工作表为行序列
func ParseXLSX(r io.Reader, maxBytes int64) ([]Row, error) {
	data, err := readCapped(r, maxBytes)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}
	keys := normalizeHeader(records[0])

	var rows []Row
	for _, rec := range records[1:] {
		row := recordToRow(keys, rec)
		if row.Empty() {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// readCapped 读完整个文件并执行大小上限
func readCapped(r io.Reader, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, ErrFileTooLarge
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyFile
	}
	return data, nil
}

func normalizeHeader(header []string) []string {
	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return keys
}

func recordToRow(keys, rec []string) Row {
	row := make(Row, len(keys))
	for i, k := range keys {
		if k == "" {
			continue
		}
		if i < len(rec) {
			row[k] = rec[i]
		} else {
			row[k] = ""
		}
	}
	return row
}
