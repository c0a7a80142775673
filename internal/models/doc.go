// Package models defines the core domain models for the daily diet API.
//
// Two models cover the whole domain:
//   - User: a person whose diet is being tracked
//   - Meal: a single meal recorded against a user's diet plan
//
// Relationships use ID strings instead of pointers: a Meal references its
// owner through UserID only, which keeps the models serializable and avoids
// circular references. Timestamps are Unix seconds.
package models
