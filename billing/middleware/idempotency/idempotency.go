package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"encore.app/billing/model"
)

// HeaderName is the request header that carries the idempotency key.
const HeaderName = "X-Idempotency-Key"

// Middleware makes tagged endpoints replay-safe: the first request with a
// given key executes normally and its response is cached; retries with the
// same key and body get the cached response back, while retries with a
// different body are rejected as a key conflict.
//
//encore:middleware target=tag:idempotency
func Middleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := requestKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	bodyHash := payloadHash(req)

	record, getErr := replayCache.Get(req.Context(), key)
	if getErr != nil {
		if errors.Is(getErr, cache.Miss) {
			return runFirstAttempt(req, next, key, bodyHash)
		}
		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"},
		}
	}

	return replay(req, next, record, key, bodyHash)
}

// runFirstAttempt executes the request and records the outcome. A failed
// request clears its record so the caller can retry with the same key.
func runFirstAttempt(req middleware.Request, next middleware.Next, key model.IdempotencyKey, bodyHash string) middleware.Response {
	if err := replayCache.Set(req.Context(), key, model.IdempotencyRecord{
		Status:    model.IdempotencyInFlight,
		CreatedAt: time.Now(),
	}); err != nil {
		rlog.Error("failed to mark request in flight", "error", err)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to mark request in flight"},
		}
	}

	response := next(req)

	if response.Err != nil {
		clearRecord(req.Context(), key)
	} else {
		storeResponse(req.Context(), key, bodyHash, response)
	}

	return response
}

// replay resolves a request whose key already has a record.
func replay(req middleware.Request, next middleware.Next, record model.IdempotencyRecord, key model.IdempotencyKey, bodyHash string) middleware.Response {
	if bodyHash != "" && record.RequestBodyHash != "" && bodyHash != record.RequestBodyHash {
		return middleware.Response{
			Err: &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"},
		}
	}

	switch record.Status {
	case model.IdempotencyInFlight:
		rlog.Info("concurrent request detected", "key", key.Key)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
		}

	case model.IdempotencyCompleted:
		if payload := decodeCachedResponse(req, record, key); payload != nil {
			return middleware.Response{Payload: payload}
		}
		// Corrupted or empty cached response, process as new.
		return next(req)

	default:
		rlog.Warn("unknown idempotency record status, processing as new request", "key", key.Key, "status", record.Status)
		return next(req)
	}
}

// requestKey builds the cache key from the endpoint path and the
// caller-supplied header.
func requestKey(req middleware.Request) (model.IdempotencyKey, *errs.Error) {
	var headerVal string
	if headers := req.Data().Headers; headers != nil {
		headerVal = strings.TrimSpace(headers.Get(HeaderName))
	}
	if headerVal == "" {
		return model.IdempotencyKey{}, &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}
	}

	return model.IdempotencyKey{
		Resource: req.Data().Path,
		Key:      headerVal,
	}, nil
}

// payloadHash fingerprints the request body for conflict detection.
func payloadHash(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}

	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body", "error", err)
		return ""
	}

	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// decodeCachedResponse rebuilds the typed response payload from the cached
// JSON, using the endpoint's response type from the API metadata.
func decodeCachedResponse(req middleware.Request, record model.IdempotencyRecord, key model.IdempotencyKey) any {
	if len(record.Response) == 0 {
		return nil
	}

	responseType := req.Data().API.ResponseType
	if responseType == nil {
		return nil
	}

	rlog.Info("returning cached response", "key", key.Key)
	value := reflect.New(responseType.Elem()).Interface()
	if err := json.Unmarshal(record.Response, value); err != nil {
		rlog.Error("failed to unmarshal cached response", "error", err, "key", key.Key)
		return nil
	}
	return value
}

// clearRecord removes the in-flight record so a failed request can be retried.
func clearRecord(ctx context.Context, key model.IdempotencyKey) {
	if _, err := replayCache.Delete(ctx, key); err != nil {
		rlog.Error("failed to clear failed request from cache", "error", err)
	}
}

// storeResponse caches the successful response payload for replay.
func storeResponse(ctx context.Context, key model.IdempotencyKey, bodyHash string, response middleware.Response) {
	record := model.IdempotencyRecord{
		Status:          model.IdempotencyCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}

	if response.Payload != nil {
		body, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for caching", "error", err)
			return
		}
		record.Response = body
	}

	if err := replayCache.Set(ctx, key, record); err != nil {
		rlog.Error("failed to cache successful response", "error", err)
	}
}
