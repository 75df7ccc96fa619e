package models

import "errors"

// 核心错误类型：几何非法与数据源不可用是仅有的两类致命错误，
// NoData/超出范围等采样失败一律以NaN高程表达，不作为错误返回
var (
	ErrInvalidGeometry   = errors.New("invalid geometry")
	ErrSourceUnavailable = errors.New("raster source unavailable")
)
