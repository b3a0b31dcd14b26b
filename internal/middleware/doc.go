// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 這個包包含了身份驗證、請求日誌與限流的中間件函數，
// 用於在 HTTP 請求處理過程中執行跨請求的功能。
package middleware
