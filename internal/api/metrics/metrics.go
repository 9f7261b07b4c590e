// Package metrics defines and registers all custom Prometheus metrics for the
// brain-training progress API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "braintrain"

// ── Score submission metrics ──────────────────────────────────────────────────

// ScoresSubmittedTotal counts accepted score submissions.
// Labels:
//   - game: the game kind (e.g. "mathChallenge")
//   - result: "high_score" when the submission raised the stored score,
//     "kept" otherwise
var ScoresSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scores_submitted_total",
		Help:      "Total number of score submissions accepted, by game and result.",
	},
	[]string{"game", "result"},
)

// ScoreErrorsTotal counts submissions that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "unknown_game", "user_not_found", "storage")
var ScoreErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "score_errors_total",
		Help:      "Total number of score submissions that failed processing.",
	},
	[]string{"reason"},
)

// SubmissionsDedupTotal counts duplicate-submission decisions.
// Label:
//   - result: "hit" (duplicate, dropped) or "miss" (new submission, processed)
var SubmissionsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_dedup_total",
		Help:      "Total number of duplicate-submission checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ScoreSubmissionDuration measures how long one submission takes end-to-end.
// Label:
//   - game: the game kind
var ScoreSubmissionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "score_submission_duration_seconds",
		Help:      "Duration of score submission processing, from validation to persistence.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"game"},
)

// ── Account metrics ───────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successfully created accounts.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts created.",
	},
)

// IntakesSubmittedTotal counts questionnaire intake submissions.
var IntakesSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "intakes_submitted_total",
		Help:      "Total number of onboarding questionnaires recorded.",
	},
)

// ── Contact metrics ───────────────────────────────────────────────────────────

// ContactQueueDepth tracks the number of messages waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ContactQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "contact_queue_depth",
		Help:      "Current number of contact messages pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ContactMessagesTotal counts contact messages by outcome.
// Label:
//   - result: "stored" or "error"
var ContactMessagesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact messages processed, by result.",
	},
	[]string{"result"},
)
