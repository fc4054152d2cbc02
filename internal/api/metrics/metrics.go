// Package metrics defines and registers all custom Prometheus metrics for
// the employment portal API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register themselves with the
// default registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// RegistrationsTotal counts applicant registrations.
// Label:
//   - result: "created" or "rejected" (validation failure)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// CompaniesCreatedTotal counts successfully created companies.
var CompaniesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "companies_created_total",
		Help:      "Total number of companies created.",
	},
)

// OffersTotal counts offer writes.
// Label:
//   - operation: "create" or "update"
var OffersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "offers_total",
		Help:      "Total number of offer writes, by operation.",
	},
	[]string{"operation"},
)

// PostulationsCreatedTotal counts successfully created postulations.
var PostulationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "postulations_created_total",
		Help:      "Total number of postulations created.",
	},
)

// WelcomeEmailsTotal counts welcome email dispatch outcomes.
// Label:
//   - result: "sent", "error", or "dropped" (queue full)
var WelcomeEmailsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "welcome_emails_total",
		Help:      "Total number of welcome email dispatch attempts, by result.",
	},
	[]string{"result"},
)
