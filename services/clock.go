package services

import "cakmak-pos/utils"

// todayFn is swapped out in tests to pin the current day.
var todayFn = utils.Today
