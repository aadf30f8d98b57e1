/*
	Project: SmartSchool Connect
	Target: secondary schools (students, teachers & admins on one portal)
*/
package connect

/*
TODO: real authentication: the login form accepts any email & password, the role flag is all there is
TODO: admin: import rosters from CSV (apps/admin seed only loads the demo data)
TODO: parents as a 4th role, reusing the class -> parents addresses of the directory

Web:
	- Landing & Login pages
	- Dashboards
		* Student: attendance, homework, schedule
		* Teacher: classes, attendance marking, assignments
		* Admin: school stats, system alerts
	- Notifications over websocket (/ws/notifications)

------------------------------------ Version X ----------------------------------------
- Attendance history per student (the rosters are already stored per class & day)
- Assignment attachments: store files (S3 ??) instead of links only
*/
