package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

var exercises = []string{
	"Bench Press", "Squat", "Deadlift", "Overhead Press",
	"Barbell Row", "Pull Up", "Romanian Deadlift", "Lunge",
}

// Workout mirrors the create request body accepted by POST /workouts
type Workout struct {
	Exercise string  `json:"exercise"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
	Date     string  `json:"date,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

// randomWorkout builds a plausible workout dated within the last 90 days
func randomWorkout() Workout {
	daysAgo := time.Duration(rand.Intn(90)) * 24 * time.Hour
	return Workout{
		Exercise: exercises[rand.Intn(len(exercises))],
		Sets:     rand.Intn(5) + 1,
		Reps:     rand.Intn(12) + 1,
		Weight:   float64(rand.Intn(80)+9) * 2.5,
		Date:     time.Now().UTC().Add(-daysAgo).Format(time.RFC3339),
	}
}

// insertWorkout sends a POST request to create a workout
func insertWorkout(baseURL string, workout Workout) error {
	body, err := json.Marshal(workout)
	if err != nil {
		return fmt.Errorf("failed to marshal workout: %w", err)
	}

	resp, err := http.Post(baseURL+"/workouts", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run test_scripts/insert_workouts_load.go <number_of_workouts> [server_url]")
		fmt.Println("Example: go run test_scripts/insert_workouts_load.go 1000")
		fmt.Println("Example: go run test_scripts/insert_workouts_load.go 1000 http://localhost:8080")
		os.Exit(1)
	}

	count, err := strconv.Atoi(os.Args[1])
	if err != nil {
		fmt.Printf("Error: Invalid number of workouts '%s'. Please provide a valid integer.\n", os.Args[1])
		os.Exit(1)
	}
	if count <= 0 {
		fmt.Println("Error: Number of workouts must be greater than 0")
		os.Exit(1)
	}

	serverURL := "http://localhost:8080"
	if len(os.Args) >= 3 {
		serverURL = strings.TrimRight(os.Args[2], "/")
	}

	fmt.Printf("Starting load test: inserting %d workouts to %s\n", count, serverURL)
	fmt.Println("Press Ctrl+C to stop early")

	startTime := time.Now()
	successCount := 0
	errorCount := 0

	reportInterval := max(1, count/10)

	for i := 0; i < count; i++ {
		workout := randomWorkout()

		if err := insertWorkout(serverURL, workout); err != nil {
			errorCount++
			fmt.Printf("Error inserting workout %d (%s): %v\n", i+1, workout.Exercise, err)
		} else {
			successCount++
		}

		if (i+1)%reportInterval == 0 || i == count-1 {
			elapsed := time.Since(startTime)
			rate := float64(i+1) / elapsed.Seconds()
			fmt.Printf("Progress: %d/%d workouts (%.1f%%) - Rate: %.1f req/sec - Success: %d, Errors: %d\n",
				i+1, count, float64(i+1)/float64(count)*100, rate, successCount, errorCount)
		}
	}

	totalTime := time.Since(startTime)

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("LOAD TEST COMPLETE")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Total workouts attempted: %d\n", count)
	fmt.Printf("Successful inserts:       %d\n", successCount)
	fmt.Printf("Failed inserts:           %d\n", errorCount)
	fmt.Printf("Success rate:             %.2f%%\n", float64(successCount)/float64(count)*100)
	fmt.Printf("Total time:               %v\n", totalTime)
	fmt.Printf("Average rate:             %.2f req/sec\n", float64(count)/totalTime.Seconds())

	if errorCount > 0 {
		fmt.Printf("\nWarning: %d errors occurred during the load test\n", errorCount)
		os.Exit(1)
	}

	fmt.Println("\nLoad test completed successfully!")
}
