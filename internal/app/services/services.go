package services

// Services defined in this package:
// - AuthService: credential verification and token issuance
// - UserService: user management and profile pictures
// - AttendanceService: the attendance ledger (marking, bulk day status,
//   holiday auto-marking, histories, rosters, percentages)
// - LeaveService: the leave request workflow and its attendance
//   reconciliation
